package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"training-plan-server/internal/model"
	srv "training-plan-server/internal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestS3PlanArchive_SavePlan(t *testing.T) {
	ctx := context.Background()
	plan := &model.TrainingPlanResponse{
		PlanOverview:           &model.PlanOverview{TotalWeeks: 1, SessionsPerWeek: 2, Objective: "Finir"},
		GeneralRecommendations: []string{},
	}

	tests := []struct {
		name         string
		userID       string
		putErr       error
		expectPrefix string
		expectErr    bool
	}{
		{name: "user plan", userID: "user-1", expectPrefix: "plans/user-1/"},
		{name: "anonymous plan", userID: "", expectPrefix: "plans/anonymous/"},
		{name: "upload failure", userID: "user-1", putErr: errors.New("access denied"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			putter := new(MockObjectPutter)
			var captured *s3.PutObjectInput
			call := putter.On("PutObject", ctx, mock.AnythingOfType("*s3.PutObjectInput")).Run(func(args mock.Arguments) {
				captured = args.Get(1).(*s3.PutObjectInput)
			})
			if tt.putErr != nil {
				call.Return(nil, tt.putErr)
			} else {
				call.Return(&s3.PutObjectOutput{}, nil)
			}
			archive := srv.NewS3PlanArchive(putter, "plans-bucket")

			key, err := archive.SavePlan(ctx, tt.userID, plan)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(key, tt.expectPrefix), key)
			assert.True(t, strings.HasSuffix(key, ".json"), key)
			assert.Equal(t, "plans-bucket", aws.ToString(captured.Bucket))
			assert.Equal(t, key, aws.ToString(captured.Key))
			assert.Equal(t, "application/json", aws.ToString(captured.ContentType))

			body, err := io.ReadAll(captured.Body)
			require.NoError(t, err)
			var stored model.TrainingPlanResponse
			require.NoError(t, json.Unmarshal(body, &stored))
			assert.Equal(t, "Finir", stored.PlanOverview.Objective)
		})
	}
}
