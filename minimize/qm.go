// Package minimize implements the Quine–McCluskey reduction of a truth
// table to a sum-of-products expression per output (spec.md §4.8).
package minimize

import (
	"sort"
	"strings"

	"github.com/xDarkicex/circuitsim/engine"
)

// term is one row or merged group of rows, one byte per input column:
// '0', '1', or '_' for a position collapsed by a prior merge.
type term []byte

func (t term) key() string { return string(t) }

func (t term) popcount() int {
	n := 0
	for _, b := range t {
		if b == '1' {
			n++
		}
	}
	return n
}

// combine returns the merged term and true if a and b differ in exactly
// one bit position and agree everywhere else (including don't-cares).
func combine(a, b term) (term, bool) {
	if len(a) != len(b) {
		return nil, false
	}
	diffAt := -1
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if a[i] == '_' || b[i] == '_' {
			return nil, false
		}
		if diffAt != -1 {
			return nil, false
		}
		diffAt = i
	}
	if diffAt == -1 {
		return nil, false
	}
	out := make(term, len(a))
	copy(out, a)
	out[diffAt] = '_'
	return out, true
}

// primeImplicants runs spec.md §4.8 steps 2-4 over the given minterms,
// returning every row that survives a full pass without being combined.
func primeImplicants(minterms []term) []term {
	current := minterms
	var primes []term

	for len(current) > 0 {
		byPop := make(map[int][]term)
		for _, t := range current {
			byPop[t.popcount()] = append(byPop[t.popcount()], t)
		}
		pops := make([]int, 0, len(byPop))
		for p := range byPop {
			pops = append(pops, p)
		}
		sort.Ints(pops)

		combined := make(map[string]bool)
		seenNext := make(map[string]bool)
		var next []term

		for _, p := range pops {
			higher, ok := byPop[p+1]
			if !ok {
				continue
			}
			for _, a := range byPop[p] {
				for _, b := range higher {
					merged, ok := combine(a, b)
					if !ok {
						continue
					}
					combined[a.key()] = true
					combined[b.key()] = true
					if !seenNext[merged.key()] {
						seenNext[merged.key()] = true
						next = append(next, merged)
					}
				}
			}
		}

		seenPrime := make(map[string]bool)
		for _, t := range current {
			if combined[t.key()] || seenPrime[t.key()] {
				continue
			}
			seenPrime[t.key()] = true
			primes = append(primes, t)
		}

		current = next
	}

	return primes
}

// render turns a prime implicant into a product of literals: a '0' bit
// negates the column's name, a '1' bit uses it bare, a '_' bit is
// omitted. An implicant with every bit don't-care (the function is
// identically true) renders as the empty product; Minimize substitutes
// the constant "1" for that case.
func render(t term, cols []string) string {
	var parts []string
	for i, b := range t {
		switch b {
		case '1':
			parts = append(parts, cols[i])
		case '0':
			parts = append(parts, "!"+cols[i])
		}
	}
	return strings.Join(parts, ".")
}

// Minimize reduces table to one minimal-ish sum-of-products string per
// output column, using the input columns (in the order inputCols lists
// them) as the literal set. Per spec.md §4.8/§9,
// essential-prime-implicant selection is not implemented: every prime
// implicant survives into the final expression, so the result is a
// correct but not-necessarily-minimal cover.
func Minimize(table *engine.Table[bool], inputCols, outputCols []string) map[string]string {
	idx := make(map[string]int)
	for i, c := range table.Columns() {
		idx[c] = i
	}

	rows := table.Rows()
	results := make(map[string]string, len(outputCols))

	for _, out := range outputCols {
		outIdx, ok := idx[out]
		if !ok {
			continue
		}

		var minterms []term
		for _, row := range rows {
			if !row[outIdx] {
				continue
			}
			t := make(term, len(inputCols))
			for i, in := range inputCols {
				if row[idx[in]] {
					t[i] = '1'
				} else {
					t[i] = '0'
				}
			}
			minterms = append(minterms, t)
		}

		if len(minterms) == 0 {
			results[out] = "0"
			continue
		}

		primes := primeImplicants(dedupe(minterms))
		products := make([]string, 0, len(primes))
		for _, p := range primes {
			products = append(products, render(p, inputCols))
		}
		sort.Strings(products)

		expr := strings.Join(products, "+")
		if expr == "" {
			expr = "1"
		}
		results[out] = expr
	}

	return results
}

func dedupe(terms []term) []term {
	seen := make(map[string]bool, len(terms))
	out := make([]term, 0, len(terms))
	for _, t := range terms {
		if seen[t.key()] {
			continue
		}
		seen[t.key()] = true
		out = append(out, t)
	}
	return out
}
