package profile

import (
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/condgen/internal/model"
)

func TestResolve_HostDefaults(t *testing.T) {
	eff := Resolve(nil, Overrides{})

	assert.Equal(t, "host", eff.Name)
	assert.Equal(t, runtime.GOOS, eff.OS)
	assert.Equal(t, runtime.GOARCH, eff.Arch)
	assert.Equal(t, strconv.IntSize, eff.PtrBits)
	assert.Empty(t, eff.Features)
}

func TestResolve_Layering(t *testing.T) {
	base := &model.Profile{
		Name:     "embedded",
		OS:       "linux",
		PtrBits:  32,
		Features: []string{"mmap"},
		Vars: map[string]cty.Value{
			"vendor": cty.StringVal("acme"),
			"rev":    cty.NumberIntVal(1),
		},
	}

	eff := Resolve(base, Overrides{
		Arch:     "arm",
		Features: []string{"simd"},
		Vars:     map[string]cty.Value{"rev": cty.NumberIntVal(2)},
	})

	assert.Equal(t, "embedded", eff.Name)
	assert.Equal(t, "linux", eff.OS, "Base profile should override the host OS")
	assert.Equal(t, "arm", eff.Arch, "Override should win over the host arch")
	assert.Equal(t, 32, eff.PtrBits)
	assert.Equal(t, []string{"mmap", "simd"}, eff.Features, "Features accumulate base then overrides")
	assert.True(t, eff.Vars["vendor"].RawEquals(cty.StringVal("acme")))
	assert.True(t, eff.Vars["rev"].RawEquals(cty.NumberIntVal(2)), "Override vars win on a name clash")

	assert.Equal(t, []string{"mmap"}, base.Features, "Resolution must not mutate the base profile")
	assert.True(t, base.Vars["rev"].RawEquals(cty.NumberIntVal(1)))
}

func TestParseVar(t *testing.T) {
	testCases := []struct {
		name      string
		arg       string
		wantName  string
		wantVal   cty.Value
		expectErr bool
	}{
		{name: "string value", arg: "vendor=acme", wantName: "vendor", wantVal: cty.StringVal("acme")},
		{name: "bool true", arg: "fast=true", wantName: "fast", wantVal: cty.True},
		{name: "bool false", arg: "fast=false", wantName: "fast", wantVal: cty.False},
		{name: "number", arg: "lanes=4", wantName: "lanes", wantVal: cty.NumberIntVal(4)},
		{name: "empty value is a string", arg: "tag=", wantName: "tag", wantVal: cty.StringVal("")},
		{name: "uppercase TRUE stays a string", arg: "fast=TRUE", wantName: "fast", wantVal: cty.StringVal("TRUE")},
		{name: "error - no equals", arg: "vendor", expectErr: true},
		{name: "error - empty name", arg: "=acme", expectErr: true},
		{name: "error - invalid identifier", arg: "my flag=1", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, val, err := ParseVar(tc.arg)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantName, name)
			assert.True(t, val.RawEquals(tc.wantVal), "got %#v, want %#v", val, tc.wantVal)
		})
	}
}
