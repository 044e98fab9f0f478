package entity_test

import (
	"fmt"

	"github.com/dhamidi/streamhtml/entity"
)

func ExampleDecoder() {
	d := entity.New()
	for _, r := range "&#x41;" {
		d.ProcessChar(r)
	}
	fmt.Println(d.Status(), d.Entity())
	// Output: completed A
}

func ExampleDecodeString() {
	fmt.Println(entity.DecodeString("1 &lt; 2 &amp;&amp; &bogus;"))
	// Output: 1 < 2 && &bogus;
}
