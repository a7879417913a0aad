package drift

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"sort"
)

type Status string

var (
	StatusAdded   Status = "added"
	StatusRemoved Status = "removed"
	StatusChanged Status = "changed"
)

// Change represents a change in a resource property
type Change struct {
	OldValue any
	NewValue any
}

// DriftResult describes how one resource differs from the published template
type DriftResult struct {
	LogicalID    string
	ResourceType string
	Status       Status
	Changes      map[string]Change
}

// Detector compares a synthesized template with the one last published
type Detector struct {
	logger *slog.Logger
}

func NewDetector(logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return &Detector{
		logger: logger,
	}
}

// Detect takes templates decoded with template.Normalize. A nil published
// template reports every current resource as added. Results are ordered by
// logical id.
func (d *Detector) Detect(ctx context.Context, current, published map[string]any) ([]*DriftResult, error) {
	currentResources, err := resources(current)
	if err != nil {
		return nil, fmt.Errorf("invalid current template: %w", err)
	}
	publishedResources, err := resources(published)
	if err != nil {
		return nil, fmt.Errorf("invalid published template: %w", err)
	}

	var results []*DriftResult
	for id, res := range currentResources {
		old, ok := publishedResources[id]
		if !ok {
			results = append(results, &DriftResult{
				LogicalID:    id,
				ResourceType: resourceType(res),
				Status:       StatusAdded,
			})
			continue
		}

		changes := diffProperties(properties(old), properties(res))
		if resourceType(old) != resourceType(res) {
			changes["Type"] = Change{OldValue: resourceType(old), NewValue: resourceType(res)}
		}
		if len(changes) > 0 {
			results = append(results, &DriftResult{
				LogicalID:    id,
				ResourceType: resourceType(res),
				Status:       StatusChanged,
				Changes:      changes,
			})
		}
	}

	for id, res := range publishedResources {
		if _, ok := currentResources[id]; !ok {
			results = append(results, &DriftResult{
				LogicalID:    id,
				ResourceType: resourceType(res),
				Status:       StatusRemoved,
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].LogicalID < results[j].LogicalID
	})

	for _, r := range results {
		d.logger.Debug("Drift detected",
			"logicalID", r.LogicalID,
			"resourceType", r.ResourceType,
			"status", r.Status,
			"changes", len(r.Changes))
	}
	return results, nil
}

func resources(tpl map[string]any) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any)
	if tpl == nil {
		return out, nil
	}
	raw, ok := tpl["Resources"]
	if !ok {
		return out, nil
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("resources is %T, not an object", raw)
	}
	for id, entry := range entries {
		res, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("resource %s is %T, not an object", id, entry)
		}
		out[id] = res
	}
	return out, nil
}

func resourceType(res map[string]any) string {
	t, _ := res["Type"].(string)
	return t
}

func properties(res map[string]any) map[string]any {
	props, _ := res["Properties"].(map[string]any)
	return props
}

func diffProperties(old, current map[string]any) map[string]Change {
	changes := make(map[string]Change)
	for key, value := range current {
		if prev, ok := old[key]; !ok || !reflect.DeepEqual(prev, value) {
			changes[key] = Change{OldValue: old[key], NewValue: value}
		}
	}
	for key, value := range old {
		if _, ok := current[key]; !ok {
			changes[key] = Change{OldValue: value}
		}
	}
	return changes
}
