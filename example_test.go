package handlemap_test

import (
	"fmt"

	"github.com/hupe1980/handlemap"
)

// Enemy embeds handlemap.Handle, which is how item types opt in to being
// stored: the embedded handle is the item's self handle, managed by the map.
type Enemy struct {
	handlemap.Handle
	X, Y float32
	HP   int32
}

func Example() {
	m, err := handlemap.NewGrowing[Enemy]()
	if err != nil {
		panic(err)
	}
	defer m.Destroy()

	h, _ := m.Add(Enemy{X: 1, Y: 2, HP: 100})

	if e, ok := m.Get(h); ok {
		e.HP -= 30 // mutate through the borrowed pointer
	}

	e, _ := m.Get(h)
	fmt.Println(h, e.HP)

	m.Remove(h)
	_, ok := m.Get(h)
	fmt.Println("stale handle resolves:", ok)

	// Output:
	// Handle(1:1) 70
	// stale handle resolves: false
}

func ExampleMap_All() {
	m, err := handlemap.NewFixed[Enemy](8)
	if err != nil {
		panic(err)
	}
	defer m.Destroy()

	a, _ := m.Add(Enemy{HP: 1})
	m.Add(Enemy{HP: 2})
	m.Add(Enemy{HP: 3})
	m.Remove(a)

	for h, e := range m.All() {
		fmt.Println(h, e.HP)
	}

	// Output:
	// Handle(2:1) 2
	// Handle(3:1) 3
}

func ExampleMap_Valid() {
	m, err := handlemap.NewStatic[Enemy](1_000_000)
	if err != nil {
		panic(err)
	}
	defer m.Destroy()

	h, _ := m.Add(Enemy{HP: 5})
	fmt.Println(m.Valid(h))

	m.Remove(h)
	fmt.Println(m.Valid(h))

	// A recycled slot bumps the generation, so the old handle stays dead.
	h2, _ := m.Add(Enemy{HP: 6})
	fmt.Println(m.Valid(h), m.Valid(h2), h2)

	// Output:
	// true
	// false
	// false true Handle(1:2)
}
