package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pakricemarket/mandi-admin/internal/common"
)

func TestStageStatus(t *testing.T) {
	cases := []struct {
		name  string
		stage error
		want  codes.Code
	}{
		{"validation", common.ErrValidation, codes.InvalidArgument},
		{"extraction", common.ErrExtraction, codes.FailedPrecondition},
		{"render", common.ErrRender, codes.Internal},
		{"upload", common.ErrUpload, codes.Unavailable},
		{"persistence", common.ErrPersistence, codes.Internal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := stageStatus(common.StageError(tc.stage, errors.New("boom")))
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tc.want, st.Code())
		})
	}
}

func TestStageStatusUnknownErrorIsInternal(t *testing.T) {
	st, ok := status.FromError(stageStatus(errors.New("plain")))
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
}
