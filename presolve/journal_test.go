package presolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestoreInvertsFixAddAndSubstitute(t *testing.T) {
	j := &Journal{}
	// Original numbering: [0, 1, 2]. Fix index 1 at value 7 -> reduced is
	// [0, 2] with 0 at index 0, 2 at index 1.
	j.Record(FixTransform{V: 1, Value: 7})
	// Then variable 0 (original numbering, which is still index 0 after the
	// fix) gets SPIN->BINARY substituted: original = 2*reduced - 1.
	j.Record(SubstituteTransform{V: 0, Multiplier: 2, Offset: -1})
	// Then a fresh variable is appended at index 2.
	j.Record(AddTransform{V: 2})

	reduced := []float64{1, 9, 123}
	restored := restoreJournal(j, reduced)

	// Reverse order: drop the appended var, undo the substitution on index
	// 0, insert the fixed value at index 1.
	assert.Equal(t, []float64{1, 7, 9}, restored)
}

func TestRestoreEmptyJournalIsIdentity(t *testing.T) {
	j := &Journal{}
	reduced := []int{1, 2, 3}
	assert.Equal(t, reduced, restoreJournal(j, reduced))
}
