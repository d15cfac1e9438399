package content

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrDuplicateKey is returned when two cards in one list share a title or name.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrEmptyKey is returned for a card without a title or name.
	ErrEmptyKey = errors.New("empty key")
	// ErrRatingOutOfRange is returned for a testimonial rating outside 0..MaxRating.
	ErrRatingOutOfRange = errors.New("rating out of range")
)

// Validate reports authoring errors: list items need unique, non-empty keys
// (module title, instructor name, testimonial name) and testimonial ratings
// must lie in 0..MaxRating. Every problem is reported, not just the first.
func (c *Catalog) Validate() error {
	var merr *multierror.Error

	titles := make([]string, len(c.Modules))
	for i, m := range c.Modules {
		titles[i] = m.Title
	}
	merr = multierror.Append(merr, checkKeys("modules", titles)...)

	names := make([]string, len(c.Instructors))
	for i, in := range c.Instructors {
		names[i] = in.Name
	}
	merr = multierror.Append(merr, checkKeys("instructors", names)...)

	names = make([]string, len(c.Testimonials))
	for i, tm := range c.Testimonials {
		names[i] = tm.Name
		if tm.Rating < 0 || tm.Rating > MaxRating {
			merr = multierror.Append(merr,
				fmt.Errorf("testimonials[%d] %q: %w: %d (want 0..%d)", i, tm.Name, ErrRatingOutOfRange, tm.Rating, MaxRating))
		}
	}
	merr = multierror.Append(merr, checkKeys("testimonials", names)...)

	return merr.ErrorOrNil()
}

func checkKeys(list string, keys []string) []error {
	var errs []error
	seen := make(map[string]int, len(keys))
	for i, k := range keys {
		if k == "" {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", list, i, ErrEmptyKey))
			continue
		}
		if first, ok := seen[k]; ok {
			errs = append(errs, fmt.Errorf("%s[%d] %q: %w (first at %s[%d])", list, i, k, ErrDuplicateKey, list, first))
			continue
		}
		seen[k] = i
	}
	return errs
}
