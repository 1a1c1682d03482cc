package inquiry

import "math/rand/v2"

// comboKey joins a pair into its used-set key.
func comboKey(k1, k2 string) string {
	return k1 + "|" + k2
}

// AssignOne draws one combination, one keyword uniformly at random from
// each pool. Returns nil immediately when either pool is empty.
//
// When used is non-nil, already-assigned combinations are redrawn, with
// attempts capped at the distinct combination space |pool1|×|pool2| to
// guarantee termination. Hitting the cap means the space is (almost
// certainly) exhausted; exhaustion is not an error once the pools are
// non-empty, so the last unused combination found by a deterministic sweep
// is assigned, or failing that the last random draw.
func AssignOne(pool1, pool2 []string, used map[string]struct{}) *Combination {
	if len(pool1) == 0 || len(pool2) == 0 {
		return nil
	}

	maxAttempts := len(pool1) * len(pool2)
	var k1, k2 string
	found := false

	for attempt := 0; attempt < maxAttempts; attempt++ {
		k1 = pool1[rand.IntN(len(pool1))]
		k2 = pool2[rand.IntN(len(pool2))]
		if used == nil {
			found = true
			break
		}
		if _, seen := used[comboKey(k1, k2)]; !seen {
			found = true
			break
		}
	}

	// Random search struck out. Sweep for any remaining unused pair so a
	// non-exhausted space always yields a fresh combination.
	if !found && used != nil {
		for _, c1 := range pool1 {
			for _, c2 := range pool2 {
				if _, seen := used[comboKey(c1, c2)]; !seen {
					k1, k2 = c1, c2
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}

	if used != nil {
		used[comboKey(k1, k2)] = struct{}{}
	}
	return &Combination{Keyword1: k1, Keyword2: k2}
}

// AssignMany assigns count combinations, sharing one used-set across the
// whole session so no combination repeats until the space is exhausted.
// The result always has exactly count entries: when a pool is empty (the
// only case where AssignOne returns nil), slots are filled by a
// deterministic round-robin over whatever keywords exist, with "" standing
// in for the empty side.
func AssignMany(pool1, pool2 []string, count int) []Combination {
	if count <= 0 {
		return []Combination{}
	}

	used := make(map[string]struct{}, count)
	out := make([]Combination, 0, count)

	for i := 0; i < count; i++ {
		if c := AssignOne(pool1, pool2, used); c != nil {
			out = append(out, *c)
			continue
		}

		var c Combination
		if len(pool1) > 0 {
			c.Keyword1 = pool1[i%len(pool1)]
		}
		if len(pool2) > 0 {
			c.Keyword2 = pool2[i%len(pool2)]
		}
		out = append(out, c)
	}

	return out
}
