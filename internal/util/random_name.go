package util

import (
	"fmt"

	"scum-server/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall",
	"Grand", "Ultimate", "Prime", "Growling", "Sneaky", "Jumping", "Charging",
	"Bouncing", "Leaping",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Shark", "Hippo", "Giraffe", "Lion",
	"Tiger", "Bear", "Otter", "Dolphin", "Porcupine", "Hedgehog", "Chipmunk",
	"Dinosaur", "Okapi", "Eagle", "Wolf", "Fox", "Armadillo", "Rhino", "Panda",
}

// RandomNames returns n distinct random names for automated seats by
// combining an adjective with an animal
func RandomNames(source rng.Generator, n int) []string {
	names := make([]string, 0, n)
	seen := make(map[string]bool)

	for len(names) < n {
		name := fmt.Sprintf("%s %s",
			adjectives[source.Intn(len(adjectives))],
			animals[source.Intn(len(animals))])

		if seen[name] {
			continue
		}

		seen[name] = true
		names = append(names, name)
	}

	return names
}
