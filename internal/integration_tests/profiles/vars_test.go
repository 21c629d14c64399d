package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/condgen/internal/app"
	"github.com/vk/condgen/internal/testutil"
)

// Test for: profile vars join the guard vocabulary
func TestProfiles_Vars_JoinTheGuardVocabulary(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"defs/main.hcl": `
			profile "acme" {
				os = "linux"

				vars = {
					vendor   = "acme"
					max_conn = 128
				}
			}

			unit "limits" {
				output = "limits.txt"

				cascade "impl" {
					branch {
						when = vendor == "acme" && max_conn >= 100
						body = "large pool"
					}

					default {
						body = "small pool"
					}
				}
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTestWithConfig(t, files, func(c *app.Config) {
		c.ProfileName = "acme"
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertFileRendered(t, result, "limits.txt", "large pool\n")
}

// Test for: -set overrides a profile var
func TestProfiles_SetVars_OverrideProfileVars(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"defs/main.hcl": `
			profile "acme" {
				os = "linux"

				vars = {
					tier = "basic"
				}
			}

			unit "billing" {
				output = "billing.txt"

				cascade "impl" {
					branch {
						when = tier == "pro"
						body = "metered billing"
					}

					default {
						body = "flat billing"
					}
				}
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTestWithConfig(t, files, func(c *app.Config) {
		c.ProfileName = "acme"
		c.SetVars = []string{"tier=pro"}
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertFileRendered(t, result, "billing.txt", "metered billing\n")
}

// Test for: vars may not shadow built-in flags
func TestProfiles_VarShadowingBuiltin_IsRejected(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"defs/main.hcl": `
			profile "bad" {
				vars = {
					os = "definitely-not-an-os"
				}
			}

			unit "impl" {
				output = "impl.txt"

				cascade "impl" {
					default {
						body = "x"
					}
				}
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTestWithConfig(t, files, func(c *app.Config) {
		c.ProfileName = "bad"
	})

	// --- Assert ---
	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), `var "os" shadows a built-in flag`)
}
