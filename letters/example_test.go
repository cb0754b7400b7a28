package letters_test

import (
	"fmt"

	"github.com/katalvlaran/numerology/letters"
)

// ExampleCleanName shows the projection onto the A..Z alphabet.
func ExampleCleanName() {
	fmt.Println(letters.CleanName("José-María 2nd"))
	// Output: JOSEMARIAND
}

// ExampleTableFor compares one letter across systems.
func ExampleTableFor() {
	pyth := letters.MustTableFor(letters.Pythagorean)
	chal := letters.MustTableFor(letters.Chaldean)
	p, _ := pyth.Value('I')
	c, _ := chal.Value('I')
	fmt.Printf("%s I=%d, %s I=%d\n", pyth.System(), p, chal.System(), c)
	// Output: pythagorean I=9, chaldean I=1
}
