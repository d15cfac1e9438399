// Package content holds the static copy of the bootcamp site: brand, section
// text, and the three lists the home view is built from (curriculum modules,
// instructors and testimonials).
//
// The default catalog is authored in catalog.yaml and embedded in the binary.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MaxRating is the highest star rating a testimonial may carry.
const MaxRating = 5

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is everything the pages render.
type Catalog struct {
	Brand           Brand         `yaml:"brand"`
	Hero            Hero          `yaml:"hero"`
	About           Block         `yaml:"about"`
	Modules         []Module      `yaml:"modules"`
	Instructors     []Instructor  `yaml:"instructors"`
	Testimonials    []Testimonial `yaml:"testimonials"`
	Video           Video         `yaml:"video"`
	CTA             Block         `yaml:"cta"`
	Footer          Footer        `yaml:"footer"`
	Acknowledgement Block         `yaml:"acknowledgement"`
}

type Brand struct {
	Name    string `yaml:"name"`
	Logo    string `yaml:"logo"`
	LogoAlt string `yaml:"logoAlt"`
}

type Hero struct {
	Title    string `yaml:"title"`
	Tagline  string `yaml:"tagline"`
	Image    string `yaml:"image"`
	ImageAlt string `yaml:"imageAlt"`
}

// Block is a heading with one paragraph of copy.
type Block struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Module is one curriculum card. Title must be unique within the catalog.
type Module struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Instructor is one instructor card. Name must be unique within the catalog.
type Instructor struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Image string `yaml:"image"`
}

// Testimonial is one quote card. Rating is the number of stars drawn.
type Testimonial struct {
	Name   string `yaml:"name"`
	Quote  string `yaml:"quote"`
	Rating int    `yaml:"rating"`
}

// Video is the embedded third-party player in the testimonials section.
type Video struct {
	Src   string `yaml:"src"`
	Title string `yaml:"title"`
}

type Footer struct {
	AboutHeading   string       `yaml:"aboutHeading"`
	About          string       `yaml:"about"`
	ContactHeading string       `yaml:"contactHeading"`
	Contact        string       `yaml:"contact"`
	Social         []SocialLink `yaml:"social"`
}

type SocialLink struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	Href  string `yaml:"href"`
}

// Load decodes and validates a catalog. Unknown keys are rejected so typos
// in authored content fail loudly.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile loads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the embedded catalog. It panics if the embedded file is
// invalid, which the package tests rule out.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("content: embedded catalog is invalid: %v", err))
	}
	return c
}
