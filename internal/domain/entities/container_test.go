package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appNames(apps []*ApplicationBuilder) []string {
	names := make([]string, len(apps))
	for i, a := range apps {
		names[i] = a.Name()
	}
	return names
}

func Test_AllContainersAndSelf_PreOrder(t *testing.T) {
	group := NewEventGroupBuilder("Dosing",
		NewApplicationBuilder("Oral", "Glucose",
			NewContainer("Formulation"),
			NewApplicationBuilder("Oral-Booster", "Glucose"),
		),
		NewEventBuilder("Start", "StartCondition"),
		NewEventGroupBuilder("Nested",
			NewContainer("Plain",
				NewApplicationBuilder("IV", "Insulin"),
			),
		),
		nil,
	)

	apps := AllContainersAndSelf[*ApplicationBuilder](group)
	assert.Equal(t, []string{"Oral", "Oral-Booster", "IV"}, appNames(apps))

	groups := AllContainersAndSelf[*EventGroupBuilder](group)
	require.Len(t, groups, 2)
	assert.Equal(t, "Dosing", groups[0].Name(), "root comes first")
	assert.Equal(t, "Nested", groups[1].Name())

	events := AllContainersAndSelf[*EventBuilder](group)
	require.Len(t, events, 1)
	assert.Equal(t, "StartCondition", events[0].ConditionFormula)
}

func Test_AllContainersAndSelf_IncludesRoot(t *testing.T) {
	app := NewApplicationBuilder("Solo", "Glucose")

	apps := AllContainersAndSelf[*ApplicationBuilder](app)
	require.Len(t, apps, 1)
	assert.Same(t, app, apps[0])

	assert.Empty(t, AllContainersAndSelf[*ApplicationBuilder](nil))
}

func Test_EventGroupBuildingBlock_ApplicationBuilders(t *testing.T) {
	block := NewEventGroupBuildingBlock("Events")
	group := NewEventGroupBuilder("G", NewApplicationBuilder("A", "M"))
	block.Add(group)

	apps := block.ApplicationBuilders(group)
	require.Len(t, apps, 1)
	assert.Equal(t, "M", apps[0].MoleculeName())
	assert.Equal(t, "ApplicationBuilder", apps[0].ObjectType())

	assert.Nil(t, block.ApplicationBuilders(nil))
}

func Test_ContainerNode_ChildrenIsACopy(t *testing.T) {
	c := NewContainer("Root", NewContainer("A"))

	children := c.Children()
	children[0] = NewContainer("Replaced")

	assert.Equal(t, "A", c.Children()[0].Name())
}
