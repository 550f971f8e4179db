package sponsor

import "fmt"

// Catalog is the fixed set of valid sponsor tiers, in display order, plus the
// subset of private tiers. Private tiers require disclosure handling when
// granted (see Service.Grant). A Catalog is immutable after construction;
// build one at process start and inject it into the Service so tests can
// substitute alternates.
type Catalog struct {
	ordered []string
	valid   map[string]struct{}
	private map[string]struct{}
}

// NewCatalog builds a catalog from the ordered valid tier tags and the private
// subset. A private tag that is not also a valid tag is a configuration error;
// callers should treat it as fatal at startup, not retry at call time.
func NewCatalog(valid []string, private []string) (*Catalog, error) {
	if len(valid) == 0 {
		return nil, fmt.Errorf("sponsor: catalog requires at least one tier")
	}
	c := &Catalog{
		ordered: make([]string, 0, len(valid)),
		valid:   make(map[string]struct{}, len(valid)),
		private: make(map[string]struct{}, len(private)),
	}
	for _, t := range valid {
		if t == "" {
			return nil, fmt.Errorf("sponsor: empty tier tag in catalog")
		}
		if _, dup := c.valid[t]; dup {
			return nil, fmt.Errorf("sponsor: duplicate tier %q in catalog", t)
		}
		c.valid[t] = struct{}{}
		c.ordered = append(c.ordered, t)
	}
	for _, t := range private {
		if _, ok := c.valid[t]; !ok {
			return nil, fmt.Errorf("sponsor: private tier %q is not a valid tier", t)
		}
		c.private[t] = struct{}{}
	}
	return c, nil
}

// Tiers returns the valid tier tags in catalog order.
func (c *Catalog) Tiers() []string {
	out := make([]string, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// IsValidTier reports membership in the valid set.
func (c *Catalog) IsValidTier(tag string) bool {
	_, ok := c.valid[tag]
	return ok
}

// IsPrivateTier reports membership in the private subset.
func (c *Catalog) IsPrivateTier(tag string) bool {
	_, ok := c.private[tag]
	return ok
}
