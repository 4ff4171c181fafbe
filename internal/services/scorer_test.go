package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"alfredoptarigan/cv-screener/internal/models"
	svcmocks "alfredoptarigan/cv-screener/internal/services/mocks"
)

const twoResults = `[
  {"cvId":"a","cvName":"a.pdf","score":82,"status":"selected","missingKeywords":["k8s"],"matchedSkills":["go"],"selectionReasons":["strong go"],"rejectionReasons":[],"experienceMatch":"senior"},
  {"cvId":"b","cvName":"b.pdf","score":35,"status":"rejected","missingKeywords":[],"matchedSkills":[],"selectionReasons":[],"rejectionReasons":["no backend"],"experienceMatch":"junior"}
]`

func validRequest() models.ScoringRequest {
	return models.ScoringRequest{
		JobDescription: "Go backend engineer",
		CVTexts: []models.CVText{
			{ID: "a", Name: "a.pdf", Content: "Go, PostgreSQL"},
			{ID: "b", Name: "b.pdf", Content: "Photoshop"},
		},
	}
}

func TestScorer_Score(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) LLMService
		req  models.ScoringRequest

		wantStatus  int
		wantMessage string
		wantIDs     []string
	}{
		{
			name: "missing job description",
			mock: func(ctrl *gomock.Controller) LLMService {
				return svcmocks.NewMockLLMService(ctrl)
			},
			req: models.ScoringRequest{
				JobDescription: "   ",
				CVTexts:        []models.CVText{{ID: "a", Name: "a.pdf", Content: "x"}},
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Job description and CV texts are required",
		},
		{
			name: "missing cv texts",
			mock: func(ctrl *gomock.Controller) LLMService {
				return svcmocks.NewMockLLMService(ctrl)
			},
			req:         models.ScoringRequest{JobDescription: "Go"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Job description and CV texts are required",
		},
		{
			name: "plain json reply",
			mock: func(ctrl *gomock.Controller) LLMService {
				llm := svcmocks.NewMockLLMService(ctrl)
				llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(twoResults, nil)
				return llm
			},
			req:     validRequest(),
			wantIDs: []string{"a", "b"},
		},
		{
			name: "fenced json reply",
			mock: func(ctrl *gomock.Controller) LLMService {
				llm := svcmocks.NewMockLLMService(ctrl)
				llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("```json\n"+twoResults+"\n```", nil)
				return llm
			},
			req:     validRequest(),
			wantIDs: []string{"a", "b"},
		},
		{
			name: "fence with upper case tag",
			mock: func(ctrl *gomock.Controller) LLMService {
				llm := svcmocks.NewMockLLMService(ctrl)
				llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("```JSON\n"+twoResults+"\n```", nil)
				return llm
			},
			req:     validRequest(),
			wantIDs: []string{"a", "b"},
		},
		{
			name: "rate limited",
			mock: func(ctrl *gomock.Controller) LLMService {
				llm := svcmocks.NewMockLLMService(ctrl)
				llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", ErrRateLimited)
				return llm
			},
			req:         validRequest(),
			wantStatus:  http.StatusTooManyRequests,
			wantMessage: "Rate limit exceeded. Please try again later.",
		},
		{
			name: "credits exhausted",
			mock: func(ctrl *gomock.Controller) LLMService {
				llm := svcmocks.NewMockLLMService(ctrl)
				llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", ErrQuotaExhausted)
				return llm
			},
			req:         validRequest(),
			wantStatus:  http.StatusPaymentRequired,
			wantMessage: "AI credits exhausted. Please add credits to continue.",
		},
		{
			name: "other upstream status",
			mock: func(ctrl *gomock.Controller) LLMService {
				llm := svcmocks.NewMockLLMService(ctrl)
				llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", &UpstreamError{StatusCode: http.StatusServiceUnavailable, Body: "overloaded"})
				return llm
			},
			req:         validRequest(),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "AI gateway error: 503",
		},
		{
			name: "empty completion",
			mock: func(ctrl *gomock.Controller) LLMService {
				llm := svcmocks.NewMockLLMService(ctrl)
				llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errEmptyCompletion)
				return llm
			},
			req:         validRequest(),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "No response from AI",
		},
		{
			name: "reply is not json",
			mock: func(ctrl *gomock.Controller) LLMService {
				llm := svcmocks.NewMockLLMService(ctrl)
				llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("Sure! Here are the results.", nil)
				return llm
			},
			req:         validRequest(),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to parse AI response",
		},
		{
			name: "reply misses a field",
			mock: func(ctrl *gomock.Controller) LLMService {
				llm := svcmocks.NewMockLLMService(ctrl)
				llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(`[{"cvId":"a","cvName":"a.pdf","score":82,"status":"selected"}]`, nil)
				return llm
			},
			req:         validRequest(),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to parse AI response",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			scorer := NewScorer(tc.mock(ctrl), NewPromptBuilder())
			resp, err := scorer.Score(context.Background(), tc.req)

			if tc.wantStatus != 0 {
				var se *ScoringError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, tc.wantStatus, se.Status)
				assert.Equal(t, tc.wantMessage, se.Message)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			ids := make([]string, 0, len(resp.Results))
			for _, r := range resp.Results {
				ids = append(ids, r.CVID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Empty(t, resp.ContractViolations)
		})
	}
}

func TestScorer_Score_SendsEveryCVInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	llm := svcmocks.NewMockLLMService(ctrl)
	llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, system, user string) (string, error) {
			assert.Contains(t, system, "ATS")
			assert.Contains(t, user, "Go backend engineer")
			assert.Less(t,
				strings.Index(user, "--- CV 1 (ID: a, Name: a.pdf) ---"),
				strings.Index(user, "--- CV 2 (ID: b, Name: b.pdf) ---"))
			return "[]", nil
		})

	resp, err := NewScorer(llm, NewPromptBuilder()).Score(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestScorer_Score_ReportsContractViolations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reply := `[{"cvId":"a","cvName":"a.pdf","score":45,"status":"selected","missingKeywords":[],"matchedSkills":[],"selectionReasons":[],"rejectionReasons":[],"experienceMatch":""}]`
	llm := svcmocks.NewMockLLMService(ctrl)
	llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(reply, nil)

	resp, err := NewScorer(llm, NewPromptBuilder()).Score(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	// the result is passed through as the model returned it
	assert.Equal(t, models.StatusSelected, resp.Results[0].Status)
	assert.Equal(t, float64(45), resp.Results[0].Score)
	require.Len(t, resp.ContractViolations, 1)
	assert.Equal(t, "a", resp.ContractViolations[0].CVID)
}

func TestDecodeResults(t *testing.T) {
	full := func(override string) string {
		return `[{"cvId":"a","cvName":"a.pdf","score":70,"status":"selected","missingKeywords":[],"matchedSkills":["go"],"selectionReasons":["x"],"rejectionReasons":[],"experienceMatch":"ok"` + override + `}]`
	}

	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "valid", input: full("")},
		{name: "integer and fractional scores", input: `[{"cvId":"a","cvName":"a.pdf","score":70.5,"status":"rejected","missingKeywords":[],"matchedSkills":[],"selectionReasons":[],"rejectionReasons":[],"experienceMatch":""}]`},
		{name: "not an array", input: `{"results":[]}`, wantErr: "reply: expected a JSON array of objects"},
		{name: "null element", input: `[null]`, wantErr: "result 0: is null"},
		{name: "score as string", input: full(`,"score":"70"`), wantErr: `result 0: field "score" must be a number`},
		{name: "null list", input: full(`,"matchedSkills":null`), wantErr: `result 0: field "matchedSkills" must be an array of strings, got null`},
		{name: "list of numbers", input: full(`,"missingKeywords":[1,2]`), wantErr: `result 0: field "missingKeywords" must be an array of strings`},
		{name: "unknown status", input: full(`,"status":"maybe"`), wantErr: `result 0: field "status" must be "selected" or "rejected"`},
		{
			name:    "missing field",
			input:   `[{"cvId":"a","cvName":"a.pdf","score":70,"status":"selected","missingKeywords":[],"matchedSkills":[],"selectionReasons":[],"rejectionReasons":[]}]`,
			wantErr: `result 0: field "experienceMatch" is missing`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := DecodeResults([]byte(tc.input))
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, results, 1)
		})
	}
}
