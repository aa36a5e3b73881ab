package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adam-zethraeus/safedi/internal/models"
)

func TestBuildScopeMap_SharedScopeAcrossAliases(t *testing.T) {
	service := component("Service")
	service.AdditionalTypes = []models.TypeDescription{{Name: "ServiceProtocol", Existential: true}}

	scopes, err := buildScopeMap([]*models.Instantiable{service})
	require.NoError(t, err)

	byConcrete := scopes["Service"]
	byAlias := scopes["any ServiceProtocol"]
	require.NotNil(t, byConcrete)
	// Both entries alias the same Scope object, not structural copies.
	assert.Same(t, byConcrete, byAlias)
}

func TestBuildScopeMap_ResolvesInstantiateEdges(t *testing.T) {
	service := component("Service")
	analytics := component("Analytics")
	root := component("Root",
		prop("child", "Service", models.SourceInstantiated),
		prop("tracker", "Analytics", models.SourceLazyInstantiated),
		prop("token", "Token", models.SourceReceived),
	)

	scopes, err := buildScopeMap([]*models.Instantiable{root, service, analytics})
	require.NoError(t, err)

	rootScope := scopes["Root"]
	require.NotNil(t, rootScope)
	// Received properties do not become instantiate edges.
	require.Len(t, rootScope.PropertiesToInstantiate, 2)

	eager := rootScope.PropertiesToInstantiate[0]
	assert.Equal(t, "child", eager.Property.Name)
	assert.Equal(t, InstantiationEager, eager.Kind)
	assert.Same(t, scopes["Service"], eager.Scope)
	assert.Same(t, service, eager.Instantiable)

	lazy := rootScope.PropertiesToInstantiate[1]
	assert.Equal(t, "tracker", lazy.Property.Name)
	assert.Equal(t, InstantiationLazy, lazy.Kind)
	assert.Same(t, scopes["Analytics"], lazy.Scope)
}

func TestBuildScopeMap_MissingChildIsInternalFault(t *testing.T) {
	// Reachability validation prevents this; handing buildScopeMap an
	// inconsistent reachable set must surface an internal fault, not panic.
	root := component("Root", prop("child", "Service", models.SourceInstantiated))

	_, err := buildScopeMap([]*models.Instantiable{root})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal fault")
}
