package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/local"
)

func newLeadService(t *testing.T) *LeadService {
	t.Helper()
	store, err := local.New[model.Lead, model.LeadPatch](storage.LocalConfig{
		Dir: t.TempDir(), StorageKey: "leads",
	})
	require.NoError(t, err)
	return NewLeadService(store)
}

func TestLeads_CreateDefaultStatus(t *testing.T) {
	svc := newLeadService(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, model.Lead{Name: "Lucía"})
	require.NoError(t, err)
	require.Equal(t, model.LeadStatusNew, lead.Status)

	// estado explícito se respeta
	lead, err = svc.Create(ctx, model.Lead{Name: "Pedro", Status: model.LeadStatusContacted})
	require.NoError(t, err)
	require.Equal(t, model.LeadStatusContacted, lead.Status)
}

func TestLeads_GetByStatus(t *testing.T) {
	svc := newLeadService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, model.Lead{Name: "a", Status: model.LeadStatusNew})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.Lead{Name: "b", Status: model.LeadStatusContacted})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.Lead{Name: "c", Status: model.LeadStatusContacted})
	require.NoError(t, err)

	got, err := svc.GetByStatus(ctx, model.LeadStatusContacted)
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = svc.GetByStatus(ctx, model.LeadStatusLost)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLeads_MarkConverted(t *testing.T) {
	svc := newLeadService(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, model.Lead{
		Name:  "Lucía Torres",
		Email: "lucia@example.com",
		Phone: "+54 11 5555-0202",
		Notes: "cumpleaños de 15",
	})
	require.NoError(t, err)

	client, err := svc.MarkConverted(ctx, lead.ID)
	require.NoError(t, err)

	// el lead queda convertido
	got, err := svc.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	require.Equal(t, model.LeadStatusConverted, got.Status)

	// el cliente sale pre-armado con los datos de contacto, sin persistir
	require.Empty(t, client.ID)
	require.Equal(t, "Lucía Torres", client.Name)
	require.Equal(t, "lucia@example.com", client.Email)
	require.Equal(t, "+54 11 5555-0202", client.Phone)
	require.True(t, client.Active)

	_, err = svc.MarkConverted(ctx, "no-existe")
	require.True(t, storage.IsNotFound(err))
}
