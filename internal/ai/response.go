package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

type replyFields struct {
	Company         string `json:"company"`
	JobTitle        string `json:"job_title"`
	FullDescription string `json:"full_description"`
	HiringManager   string `json:"hiring_manager"`
}

// parseReply decodes the model's JSON answer. Models wrap JSON in markdown
// fences or chat preamble often enough that we cut down to the outermost
// object before unmarshalling.
func parseReply(reply string) (replyFields, error) {
	var f replyFields

	body := strings.TrimSpace(reply)
	if i := strings.Index(body, "{"); i >= 0 {
		if j := strings.LastIndex(body, "}"); j > i {
			body = body[i : j+1]
		}
	}
	if body == "" {
		return f, fmt.Errorf("empty reply")
	}
	if err := json.Unmarshal([]byte(body), &f); err != nil {
		return f, fmt.Errorf("decode model reply: %w", err)
	}

	f.Company = strings.TrimSpace(f.Company)
	f.JobTitle = strings.TrimSpace(f.JobTitle)
	f.FullDescription = strings.TrimSpace(f.FullDescription)
	f.HiringManager = strings.TrimSpace(f.HiringManager)

	// "null" shows up when models take the schema too literally
	for _, p := range []*string{&f.Company, &f.JobTitle, &f.FullDescription, &f.HiringManager} {
		if strings.EqualFold(*p, "null") {
			*p = ""
		}
	}
	return f, nil
}
