package toposort

import (
	"fmt"
	"slices"
)

// Sort runs Kahn's algorithm on the given dependency graph and returns
// the nodes with every node preceded by its dependencies. The label
// names the node kind in error messages ("type", "symbol", ...).
func Sort(graph map[string]map[string]bool, label string) ([]string, error) {
	inDegree := make(map[string]int, len(graph))
	for node, deps := range graph {
		if _, ok := inDegree[node]; !ok {
			inDegree[node] = 0
		}
		for dep := range deps {
			if _, declared := graph[dep]; !declared {
				return nil, fmt.Errorf("%s '%s' depends on undefined %s '%s'", label, node, label, dep)
			}
			inDegree[dep]++
		}
	}

	var queue []string
	for node, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, node)
		}
	}

	var result []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)
		for dep := range graph[node] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(result) != len(graph) {
		processed := make(map[string]bool, len(result))
		for _, node := range result {
			processed[node] = true
		}
		var remaining []string
		for node := range graph {
			if !processed[node] {
				remaining = append(remaining, node)
			}
		}
		slices.Sort(remaining)
		return nil, fmt.Errorf("dependency cycle between %ss: %v", label, remaining)
	}

	slices.Reverse(result)
	return result, nil
}
