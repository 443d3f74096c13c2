package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabind/vocabind/schema"
)

func TestLoadFile_YAML(t *testing.T) {
	s, err := schema.LoadFile("testdata/vocab.yml")
	require.NoError(t, err)
	def, ok := s.Type("Note")
	require.True(t, ok)
	assert.Equal(t, []string{"Object"}, def.Extends)
	pd, ok := def.Properties.Get("content")
	require.True(t, ok)
	assert.True(t, pd.IsLangContainer())
	assert.Equal(t, []string{"contents"}, pd.Aka)
}

func TestLoadBytes_JSONIsAccepted(t *testing.T) {
	s, err := schema.LoadBytes([]byte(`{"Thing":{"properties":{"id":{"type":"anyURI","kind":"Functional"}}}}`))
	require.NoError(t, err)
	def, ok := s.Type("Thing")
	require.True(t, ok)
	pd, ok := def.Properties.Get("id")
	require.True(t, ok)
	assert.Equal(t, schema.Functional, pd.Kind)
}

func TestLoadBytes_Errors(t *testing.T) {
	_, err := schema.LoadBytes([]byte(`Thing: [not, a, mapping]`))
	assert.Error(t, err)

	_, err = schema.LoadBytes([]byte("Thing:\n  properties:\n    p: {type: string, kind: Sometimes}"))
	assert.Error(t, err, "unknown kind names must be rejected")

	_, err = schema.LoadBytes([]byte("Thing:\n  properties:\n    p: {type: string}\n    p: {type: string}"))
	assert.Error(t, err, "duplicate property declarations must be rejected")
}

func TestPropertyMap_KeepsDeclarationOrder(t *testing.T) {
	s, err := schema.LoadBytes([]byte(`
Thing:
  properties:
    zebra: {type: string}
    alpha: {type: string}
    mango: {type: string}
`))
	require.NoError(t, err)
	def, _ := s.Type("Thing")
	assert.Equal(t, []string{"zebra", "alpha", "mango"}, def.Properties.Names())
}

func TestEffectiveProperties_InheritanceOrder(t *testing.T) {
	s, err := schema.LoadBytes([]byte(`
Base:
  properties:
    id: {type: anyURI, kind: Functional}
    name: {type: string}
Child:
  extends: [Base]
  properties:
    name: {type: languageTag}
    extra: {type: string}
`))
	require.NoError(t, err)
	props, err := s.EffectiveProperties("Child")
	require.NoError(t, err)
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"id", "name", "extra"}, names, "first insertion wins the position")
	assert.Equal(t, "languageTag", props[1].Def.Type, "later definition wins the slot")
}

func TestEffectiveProperties_ExceptProperties(t *testing.T) {
	s, err := schema.LoadBytes([]byte(`
Base:
  properties:
    keep: {type: string}
    drop: {type: string}
Child:
  extends: [Base]
  except_properties: [drop]
`))
	require.NoError(t, err)
	props, err := s.EffectiveProperties("Child")
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "keep", props[0].Name)
}

func TestEffectiveProperties_PreferredNameFoldsAlias(t *testing.T) {
	s, err := schema.LoadBytes([]byte(`
Base:
  properties:
    summary: {type: string, container_tag: summaryMap}
Child:
  extends: [Base]
  preferred_property_name:
    summary: {default: about, container: aboutMap}
`))
	require.NoError(t, err)
	props, err := s.EffectiveProperties("Child")
	require.NoError(t, err)
	require.Len(t, props, 1)
	pd := props[0].Def
	assert.Equal(t, "about", pd.Tag)
	assert.Equal(t, "aboutMap", pd.ContainerTag)
	assert.Contains(t, pd.Aka, "summary")
	assert.Contains(t, pd.ContainerAka, "summaryMap")
}

func TestEffectiveProperties_PreferredNameShapeMismatch(t *testing.T) {
	s, err := schema.LoadBytes([]byte(`
Base:
  properties:
    label: {type: string}
Child:
  extends: [Base]
  preferred_property_name:
    label: {default: tag, container: tagMap}
`))
	require.NoError(t, err)
	_, err = s.EffectiveProperties("Child")
	var mismatch *schema.KindMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "label", mismatch.Property)
}

func TestEffectiveProperties_UnknownSupertype(t *testing.T) {
	s, err := schema.LoadBytes([]byte("Child:\n  extends: [Ghost]"))
	require.NoError(t, err)
	_, err = s.EffectiveProperties("Child")
	var unknown *schema.UnknownSupertypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Ghost", unknown.Super)
}

func TestEffectiveProperties_CycleDetected(t *testing.T) {
	s, err := schema.LoadBytes([]byte("A:\n  extends: [B]\nB:\n  extends: [A]"))
	require.NoError(t, err)
	_, err = s.EffectiveProperties("A")
	var cycle *schema.CycleError
	assert.True(t, errors.As(err, &cycle), "got %v", err)
}

func TestSubtypes_ClosureIsTransitive(t *testing.T) {
	s, err := schema.LoadBytes([]byte(`
Base:
  properties: {}
Mid:
  extends: [Base]
Leaf:
  extends: [Mid]
Other:
  properties: {}
`))
	require.NoError(t, err)
	subs, err := s.Subtypes("Base")
	require.NoError(t, err)
	assert.Equal(t, []string{"Base", "Leaf", "Mid"}, subs)

	subs, err = s.Subtypes("Other")
	require.NoError(t, err)
	assert.Equal(t, []string{"Other"}, subs)

	_, err = s.Subtypes("Ghost")
	assert.Error(t, err)
}
