package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestProfileClone(t *testing.T) {
	orig := &Profile{
		Name:     "embedded",
		OS:       "linux",
		Arch:     "arm",
		PtrBits:  32,
		Features: []string{"simd"},
		Vars:     map[string]cty.Value{"vendor": cty.StringVal("acme")},
	}

	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.Features[0] = "atomics"
	clone.Vars["vendor"] = cty.StringVal("other")
	clone.OS = "darwin"

	assert.Equal(t, "simd", orig.Features[0], "Clone must not share the features slice")
	assert.Equal(t, cty.StringVal("acme"), orig.Vars["vendor"], "Clone must not share the vars map")
	assert.Equal(t, "linux", orig.OS)
}
