package matching

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/resume-scorer/internal/embedding"
	"github.com/jonathan/resume-scorer/internal/types"
)

// MatchBatch scores one resume against many jobs. The resume is encoded once
// and all job texts are encoded in a single batch call, so the encoder sees
// at most two requests no matter how many jobs arrive. Jobs with an empty
// description produce a failed entry in place; they never abort the batch.
func (m *Matcher) MatchBatch(ctx context.Context, resumeText string, jobs []types.Job, opts Options) []*types.MatchResult {
	if strings.TrimSpace(resumeText) == "" || len(jobs) == 0 {
		return nil
	}
	if m.enc == nil || len(jobs) == 1 {
		results := make([]*types.MatchResult, len(jobs))
		for i, job := range jobs {
			results[i] = m.Match(ctx, resumeText, job, opts)
		}
		return results
	}

	results := make([]*types.MatchResult, len(jobs))
	texts := make([]string, 0, len(jobs))
	valid := make([]int, 0, len(jobs))
	for i, job := range jobs {
		if strings.TrimSpace(job.Description) == "" {
			results[i] = &types.MatchResult{
				Success: false,
				Error:   "Resume text and job description are required",
			}
			continue
		}
		texts = append(texts, combineJobText(job))
		valid = append(valid, i)
	}
	if len(valid) == 0 {
		return results
	}

	resumeVec, err := m.enc.Encode(ctx, resumeText)
	var jobVecs [][]float32
	if err == nil {
		jobVecs, err = m.enc.EncodeBatch(ctx, texts)
	}
	if err != nil {
		log.Printf("semantic matching unavailable, falling back to keywords: %v", err)
		for _, i := range valid {
			results[i] = m.keywordMatch(resumeText, jobs[i], opts)
		}
		return results
	}

	for k, i := range valid {
		sim := embedding.CosineSimilarity(resumeVec, jobVecs[k])
		results[i] = scoreJob(resumeText, jobs[i], texts[k], sim, opts, true)
	}
	return results
}
