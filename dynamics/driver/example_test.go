package driver_test

import (
	"fmt"

	"github.com/cwbudde/algo-dynamics/dynamics/driver"
	"github.com/go-gl/mathgl/mgl64"
)

func ExampleNewPosition() {
	body := driver.NewTransform(mgl64.Vec3{0, 0, 0})
	goal := driver.NewTransform(mgl64.Vec3{4, 0, -2})

	p, err := driver.NewPosition(body, goal,
		driver.WithFrequency(2),
		driver.WithDamping(1),
		driver.WithResponse(0),
	)
	if err != nil {
		panic(err)
	}

	for i := 0; i < 600; i++ {
		p.Update(1.0 / 60)
	}

	fmt.Printf("%.2f %.2f %.2f\n", body.Pos[0], body.Pos[1], body.Pos[2])
	// Output:
	// 4.00 0.00 -2.00
}
