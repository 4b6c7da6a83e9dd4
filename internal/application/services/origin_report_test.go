package services

import (
	"context"
	"errors"
	"testing"

	"github.com/simkit-dev/modelcheck/internal/application/dto"
	apperrors "github.com/simkit-dev/modelcheck/internal/application/errors"
	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	"github.com/simkit-dev/modelcheck/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OriginReport_Execute(t *testing.T) {
	cfg := validConfig("origins")

	mw := &entities.Parameter{Name: "MW"}
	mw.ValueOrigin.UpdateFrom(values.NewValueOrigin(values.SourceDatabase, values.MethodOther, "PubChem"), false)
	logP := &entities.Parameter{Name: "LogP"}
	logP.ValueOrigin.UpdateFrom(values.NewValueOrigin(values.SourceDatabase, values.MethodOther, "PubChem"), false)
	fu := &entities.Parameter{Name: "fu"}
	cfg.Molecules.Add(&entities.MoleculeBuilder{Name: "Insulin", Parameters: []*entities.Parameter{mw, logP, fu}})

	loader := &fakeLoader{configs: map[string]*entities.BuildConfiguration{"o.yaml": cfg}}

	resp, err := NewOriginReportUseCase(loader, nil).Execute(context.Background(), dto.OriginReportRequest{Path: "o.yaml"})
	require.NoError(t, err)

	assert.Equal(t, "origins", resp.Name)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "1-6-PubChem", resp.Entries[0].Key())
	assert.Len(t, resp.Entries[0].Usages, 2)
	assert.Equal(t, 1, resp.UndefinedCount)
}

func Test_OriginReport_Errors(t *testing.T) {
	uc := NewOriginReportUseCase(&fakeLoader{}, nil)

	_, err := uc.Execute(context.Background(), dto.OriginReportRequest{})
	var valErr *apperrors.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "path", valErr.Field)

	_, err = uc.Execute(context.Background(), dto.OriginReportRequest{Path: "nope.yaml"})
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "nope.yaml", valErr.Field)
	assert.Contains(t, err.Error(), "no such file")
}
