package testutils

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
)

// DataGenerator produces reproducible fixtures from a fixed seed.
type DataGenerator struct {
	faker *gofakeit.Faker
}

func NewTestDataGenerator(seed uint64) *DataGenerator {
	return &DataGenerator{faker: gofakeit.New(seed)}
}

// Actor returns an ordinary user with a random id and display name.
func (g *DataGenerator) Actor() authdomain.Actor {
	return authdomain.Actor{
		UserID:      uuid.MustParse(g.faker.UUID()),
		Role:        authdomain.RoleUser,
		DisplayName: g.faker.Username(),
	}
}

// Admin returns an admin actor.
func (g *DataGenerator) Admin() authdomain.Actor {
	a := g.Actor()
	a.Role = authdomain.RoleAdmin
	return a
}

// Actors returns n ordinary users.
func (g *DataGenerator) Actors(n int) []authdomain.Actor {
	out := make([]authdomain.Actor, n)
	for i := range out {
		out[i] = g.Actor()
	}
	return out
}

// Rank picks a valid vote rank.
func (g *DataGenerator) Rank() int {
	return g.faker.IntRange(1, 3)
}

// Title returns a short clip title.
func (g *DataGenerator) Title() string {
	return "Clip by " + g.faker.Username()
}
