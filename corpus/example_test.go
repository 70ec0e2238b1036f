// SPDX-License-Identifier: MIT

package corpus_test

import (
	"fmt"

	"github.com/katalvlaran/lvrank/corpus"
)

// ExampleBuilder shows how Build drops self-links and links leaving the corpus.
func ExampleBuilder() {
	b := corpus.NewBuilder()
	_ = b.AddLink("1.html", "2.html")
	_ = b.AddLink("1.html", "1.html")           // self-link
	_ = b.AddLink("2.html", "https://go.dev/") // not a corpus page
	_ = b.AddPage("3.html")

	c, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range c.Pages() {
		links, _ := c.Links(p)
		fmt.Println(p, links)
	}
	st := c.Stats()
	fmt.Printf("dangling=%d dropped_self=%d dropped_external=%d\n",
		st.Dangling, st.DroppedSelfLinks, st.DroppedExternalLinks)
	// Output:
	// 1.html [2.html]
	// 2.html []
	// 3.html []
	// dangling=2 dropped_self=1 dropped_external=1
}
