// Package export writes the page as a static HTML document. The body is the
// shell prerendered in memory, and a small loader swaps in the WebAssembly
// build once it has started.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/communitycvs/bootcamp/internal/content"
	"github.com/communitycvs/bootcamp/internal/site"
	"github.com/communitycvs/bootcamp/router"
	"github.com/communitycvs/bootcamp/runtime"
	"github.com/communitycvs/bootcamp/vdom"
)

const (
	// DefaultBase is the path the site was first published under.
	DefaultBase  = "/creative-leadership-bootcamp/"
	DefaultTitle = "Creative Leadership & Management Skills Bootcamp"

	// MountID is the id of the element the app renders into.
	MountID = "app"

	indexFile = "index.html"
	wasmFile  = "bootcamp.wasm"
)

// ErrNoCatalog is returned when Options carries no catalog.
var ErrNoCatalog = errors.New("export: no catalog")

// Options controls one export.
type Options struct {
	Catalog *content.Catalog
	// Mode is the view to prerender.
	Mode  router.Mode
	Title string
	// Base is the URL path assets are served under. It always ends in "/".
	Base string
	Year int
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	o.Base = NormaliseBase(o.Base)
	return o
}

// NormaliseBase returns base with exactly one leading and trailing slash.
// An empty base is the site root.
func NormaliseBase(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return "/"
	}
	return "/" + base + "/"
}

// Prerender renders the shell for opts.Mode without a DOM.
func Prerender(opts Options) (*vdom.VNode, error) {
	if opts.Catalog == nil {
		return nil, ErrNoCatalog
	}
	ctrl, root := site.New(site.Config{Catalog: opts.Catalog, Year: opts.Year})
	ctrl.Navigate(opts.Mode)
	return runtime.NewStaticRenderer(root).Render(), nil
}

// Render writes the full HTML document for opts to w.
func Render(w io.Writer, opts Options) error {
	opts = opts.withDefaults()

	body, err := Prerender(opts)
	if err != nil {
		return err
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, html.Attribute{Key: "lang", Val: "en"})
	doc.AppendChild(root)
	root.AppendChild(head(opts))

	bodyEl := element(atom.Body, html.Attribute{Key: "class", Val: "antialiased text-gray-800"})
	mount := element(atom.Div, html.Attribute{Key: "id", Val: MountID})
	mount.AppendChild(vdom.ToHTMLNode(body))
	bodyEl.AppendChild(mount)
	bodyEl.AppendChild(loader(opts.Base))
	root.AppendChild(bodyEl)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

// WriteDir writes index.html into dir, creating it if needed, and returns
// the path written.
func WriteDir(dir string, opts Options) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, indexFile)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if err := Render(f, opts); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	zap.L().Info("page exported",
		zap.String("path", path),
		zap.String("view", opts.Mode.String()),
		zap.String("base", NormaliseBase(opts.Base)))
	return path, nil
}

func head(opts Options) *html.Node {
	h := element(atom.Head)
	h.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	h.AppendChild(element(atom.Meta,
		html.Attribute{Key: "name", Val: "viewport"},
		html.Attribute{Key: "content", Val: "width=device-width, initial-scale=1"},
	))

	title := element(atom.Title)
	title.AppendChild(&html.Node{Type: html.TextNode, Data: opts.Title})
	h.AppendChild(title)

	h.AppendChild(element(atom.Link,
		html.Attribute{Key: "rel", Val: "stylesheet"},
		html.Attribute{Key: "href", Val: opts.Base + "styles.css"},
	))
	h.AppendChild(element(atom.Script, html.Attribute{Key: "src", Val: opts.Base + "wasm_exec.js"}))
	return h
}

// loader starts the wasm build. The prerendered markup stays until the app
// replaces it on first render.
func loader(base string) *html.Node {
	s := element(atom.Script)
	s.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprintf(
		`const go = new Go();
WebAssembly.instantiateStreaming(fetch(%q), go.importObject).then((r) => go.run(r.instance));`,
		base+wasmFile)})
	return s
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}
