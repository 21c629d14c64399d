package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// checkDefaultTerminal enforces the one structural rule the schema structs
// cannot express: within a cascade, the default block comes after every
// branch. A branch below the default would be unreachable, which is a
// definition error, not something to silently accept.
func checkDefaultTerminal(body hcl.Body) error {
	syntaxBody, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil
	}
	for _, unitBlock := range syntaxBody.Blocks {
		if unitBlock.Type != "unit" {
			continue
		}
		for _, cascadeBlock := range unitBlock.Body.Blocks {
			if cascadeBlock.Type != "cascade" {
				continue
			}
			var defaultAt *hcl.Range
			for _, b := range cascadeBlock.Body.Blocks {
				switch b.Type {
				case "default":
					r := b.DefRange()
					defaultAt = &r
				case "branch":
					if defaultAt != nil {
						return fmt.Errorf("branch at %s follows the default block at %s; the default must be terminal", b.DefRange(), defaultAt)
					}
				}
			}
		}
	}
	return nil
}
