package landing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, "Giggly The Wizard", p.Brand)
	assert.Len(t, p.Nav, 4)
	assert.Equal(t, "scanner", p.Nav[1].Anchor)
	assert.Len(t, p.Roadmap.Milestones, 4)
	for _, m := range p.Roadmap.Milestones {
		assert.Len(t, m.Items, 3, m.Title)
	}

	// callers get their own copy
	p.Nav[0].Label = "changed"
	assert.Equal(t, "Features", Default().Nav[0].Label)
}
