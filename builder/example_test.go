// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvrank/builder"
)

// ExampleBuild assembles a 3-cycle whose last page also links to a dangling page.
func ExampleBuild() {
	c, err := builder.Build(
		[]builder.Option{builder.WithIDScheme(func(i int) string { return string(rune('A' + i)) })},
		builder.Cycle(3),
		builder.Pages("D"),
		builder.Links([2]string{"C", "D"}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range c.Pages() {
		links, _ := c.Links(p)
		fmt.Println(p, "→", links)
	}
	// Output:
	// A → [B]
	// B → [C]
	// C → [A D]
	// D → []
}
