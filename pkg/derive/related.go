package derive

import "github.com/pulsescore/seogen/models"

// crossFamilySlots is the number of related-page slots reserved for
// cross-family results when any are available.
const crossFamilySlots = 2

// RelatedPages returns up to limit seeds related to the given one:
// same-family pages first (excluding the page itself), then cross-family
// pages sharing the same intent. Ordering is catalog order, never
// randomized, so related sections are stable across builds. When fewer
// cross-family matches exist than the reserved slots, the reserve returns
// to same-family results.
func (d *Deriver) RelatedPages(seed models.PageSeed, limit int) []models.PageSeed {
	if limit <= 0 {
		return nil
	}

	var sameFamily, crossFamily []models.PageSeed
	for _, candidate := range d.Catalog.Seeds {
		if candidate.Family == seed.Family && candidate.Slug == seed.Slug {
			continue
		}
		if candidate.Family == seed.Family {
			sameFamily = append(sameFamily, candidate)
		} else if candidate.Intent == seed.Intent {
			crossFamily = append(crossFamily, candidate)
		}
	}

	reserved := crossFamilySlots
	if len(crossFamily) < reserved {
		reserved = len(crossFamily)
	}
	if reserved > limit {
		reserved = limit
	}

	sameQuota := limit - reserved
	if sameQuota > len(sameFamily) {
		sameQuota = len(sameFamily)
	}

	out := make([]models.PageSeed, 0, limit)
	out = append(out, sameFamily[:sameQuota]...)
	for _, candidate := range crossFamily {
		if len(out) >= limit {
			break
		}
		out = append(out, candidate)
	}
	// Backfill with more same-family pages if cross-family came up short.
	for i := sameQuota; i < len(sameFamily) && len(out) < limit; i++ {
		out = append(out, sameFamily[i])
	}
	return out
}
