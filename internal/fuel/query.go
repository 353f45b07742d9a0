package fuel

import (
	"slices"
	"strings"

	"github.com/inovacc/fuelr/internal/model"
)

// Models returns the explicitly supplied snapshot, falling back to the
// client's held snapshot. nil means no catalog is available.
func (c *Client) Models(models []model.FuelModel) []model.FuelModel {
	if models != nil {
		return models
	}

	return c.models
}

// ModelsByOwner returns the records owned by owner (exact match), in
// catalog order. A nil models argument means the held snapshot.
func (c *Client) ModelsByOwner(models []model.FuelModel, owner string) []model.FuelModel {
	src := c.Models(models)
	if src == nil {
		return nil
	}

	out := make([]model.FuelModel, 0, len(src))

	for _, m := range src {
		if m.Owner == owner {
			out = append(out, m)
		}
	}

	return out
}

// ModelsByPrivate returns the records whose visibility matches private, in
// catalog order. A nil models argument means the held snapshot.
func (c *Client) ModelsByPrivate(models []model.FuelModel, private bool) []model.FuelModel {
	src := c.Models(models)
	if src == nil {
		return nil
	}

	out := make([]model.FuelModel, 0, len(src))

	for _, m := range src {
		if m.Private == private {
			out = append(out, m)
		}
	}

	return out
}

// ModelsByTag returns the records carrying the exact tag, in catalog
// order. A nil models argument means the held snapshot.
func (c *Client) ModelsByTag(models []model.FuelModel, tag string) []model.FuelModel {
	src := c.Models(models)
	if src == nil {
		return nil
	}

	out := make([]model.FuelModel, 0, len(src))

	for _, m := range src {
		if m.HasTag(tag) {
			out = append(out, m)
		}
	}

	return out
}

// Owners returns the distinct owners across the snapshot. The first
// spelling seen wins and the result is sorted ascending ignoring case.
func (c *Client) Owners(models []model.FuelModel) []string {
	src := c.Models(models)
	if src == nil {
		return nil
	}

	owners := make([]string, 0, len(src))
	for _, m := range src {
		owners = append(owners, m.Owner)
	}

	return distinctFold(owners)
}

// Tags returns the distinct tags across all records of the snapshot, with
// the same dedup and ordering as Owners.
func (c *Client) Tags(models []model.FuelModel) []string {
	src := c.Models(models)
	if src == nil {
		return nil
	}

	tags := make([]string, 0, len(src))
	for _, m := range src {
		tags = append(tags, m.Tags...)
	}

	return distinctFold(tags)
}

// distinctFold dedups case-insensitively keeping the first spelling seen,
// then sorts case-insensitively ascending. The sort is stable so inputs
// that fold equal would keep their first-seen order.
func distinctFold(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}

		out = append(out, v)
	}

	slices.SortStableFunc(out, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	return out
}
