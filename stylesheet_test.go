package cssjit

import (
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectors(rules []CSSRule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Selector
	}
	return out
}

func TestAssembler_Build(t *testing.T) {
	gen := newTestGenerator(t)
	classes := []string{
		"vibe-bg-red-500",
		"vibe-p-4",
		"vibe-p-4",
		"unknown",
		"",
		"sm:vibe-flex",
		"vibe-flex",
	}

	sheet, err := NewAssembler(gen, 4).Build(context.Background(), classes)
	require.NoError(t, err)

	assert.Equal(t, 5, sheet.Classes)
	assert.Equal(t, 4, sheet.Matched)
	assert.Equal(t, []string{"unknown"}, sheet.Unmatched)
	assert.Equal(t, []string{
		".vibe-flex",
		".vibe-p-4",
		".vibe-bg-red-500",
		`.sm\:vibe-flex`,
	}, selectors(sheet.Rules))
}

func TestAssembler_StableOrder(t *testing.T) {
	gen := newTestGenerator(t)

	sheet, err := NewAssembler(gen, 8).Build(context.Background(), []string{
		"vibe-p-2", "vibe-m-2", "vibe-p-1", "vibe-gap-4",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{".vibe-p-2", ".vibe-m-2", ".vibe-p-1", ".vibe-gap-4"}, selectors(sheet.Rules))
}

func TestAssembler_DeterministicAcrossWorkers(t *testing.T) {
	gen := newTestGenerator(t)
	classes := strings.Fields(`vibe-flex md:vibe-grid vibe-grid-cols-3 hover:vibe-bg-primary
		vibe-text-lg vibe-rounded-lg vibe-shadow dark:vibe-bg-black vibe-container
		vibe-animate-pulse lg:hover:vibe-p-8 vibe-w-[320px] vibe-cursor-pointer`)

	serial, err := NewAssembler(gen, 1).Build(context.Background(), classes)
	require.NoError(t, err)
	parallel, err := NewAssembler(gen, 16).Build(context.Background(), classes)
	require.NoError(t, err)

	assert.Equal(t, serial.String(), parallel.String())
	for i := 1; i < len(serial.Rules); i++ {
		assert.LessOrEqual(t, serial.Rules[i-1].Order, serial.Rules[i].Order)
	}
}

func TestAssembler_KeyframesOnce(t *testing.T) {
	gen := newTestGenerator(t)

	sheet, err := NewAssembler(gen, 2).Build(context.Background(), []string{
		"vibe-animate-spin", "hover:vibe-animate-spin", "vibe-animate-spin-500",
	})
	require.NoError(t, err)

	keyframes := 0
	for _, r := range sheet.Rules {
		if r.IsKeyframes() {
			keyframes++
		}
	}
	assert.Equal(t, 1, keyframes)
	assert.Len(t, sheet.Rules, 4)
	assert.True(t, sheet.Rules[0].IsKeyframes(), "keyframes sort first")
}

func TestAssembler_Cancelled(t *testing.T) {
	gen := newTestGenerator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAssembler(gen, 1).Build(ctx, []string{"vibe-p-4", "vibe-m-4"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestAssembler_Empty(t *testing.T) {
	gen := newTestGenerator(t)

	sheet, err := NewAssembler(gen, 0).Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, sheet.Rules)
	assert.Equal(t, 0, sheet.Classes)
	assert.Equal(t, "", sheet.String())
}

func TestNewAssembler_DefaultWorkers(t *testing.T) {
	a := NewAssembler(newTestGenerator(t), 0)
	assert.Equal(t, runtime.GOMAXPROCS(0), a.workers)
}

func TestStylesheet_WriteTo(t *testing.T) {
	sheet := &Stylesheet{Rules: []CSSRule{
		{Selector: ".a", Declarations: "display: flex;", Order: OrderLayout},
		{Selector: ".b", Declarations: "padding: 1rem;", MediaQuery: "@media (min-width: 640px)", Order: OrderSpacing + OffsetResponsiveVariants},
	}}

	var b strings.Builder
	n, err := sheet.WriteTo(&b)
	require.NoError(t, err)

	want := ".a { display: flex; }\n@media (min-width: 640px) { .b { padding: 1rem; } }\n"
	assert.Equal(t, want, b.String())
	assert.Equal(t, int64(len(want)), n)
	assert.Equal(t, want, sheet.String())
}
