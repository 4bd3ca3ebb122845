package usecase

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"gameden/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportMembersUCEmpty(t *testing.T) {
	repo := newFakeMemberRepo()
	uc := NewExportUseCase(repo, testTimeout)

	result, err := uc.ExportMembersUC(context.Background())

	assert.ErrorIs(t, err, domain.ErrNothingToExport)
	assert.Nil(t, result)
}

func TestExportMembersUC(t *testing.T) {
	repo := newFakeMemberRepo()
	memberUC := NewMemberUseCase(repo, &fakeSender{}, testTimeout)
	for i := 0; i < 2; i++ {
		m := newMember()
		m.CardNumber = fmt.Sprintf("100%d", i)
		m.Email = fmt.Sprintf("member%d@example.com", i)
		_, err := memberUC.CreateMemberUC(context.Background(), m)
		require.NoError(t, err)
	}

	uc := NewExportUseCase(repo, testTimeout)
	result, err := uc.ExportMembersUC(context.Background())

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("GameDen_Members_%s.xlsx", time.Now().Format("2006-01-02")), result.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(result.Content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Members")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, domain.ExportHeaders, rows[0])
	assert.Equal(t, "1000", rows[1][0])
	assert.Equal(t, "Arjun Kumar", rows[1][1])
	assert.Equal(t, "9876543210", rows[1][2])
}
