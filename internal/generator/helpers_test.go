package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adam-zethraeus/safedi/internal/models"
	"github.com/adam-zethraeus/safedi/internal/registry"
)

func typ(name string) models.TypeDescription {
	return models.TypeDescription{Name: name}
}

func prop(name, typeName string, source models.PropertySource) models.Property {
	return models.Property{Name: name, Type: typ(typeName), Source: source}
}

func component(name string, properties ...models.Property) *models.Instantiable {
	return &models.Instantiable{
		ConcreteType: typ(name),
		Properties:   properties,
	}
}

func buildRegistry(t *testing.T, instantiables ...*models.Instantiable) *registry.InstantiableRegistry {
	t.Helper()
	reg := registry.NewInstantiableRegistry()
	for _, inst := range instantiables {
		require.NoError(t, reg.Register(inst))
	}
	return reg
}
