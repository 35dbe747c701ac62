package ai

import "fmt"

const extractionPrompt = `You are a job-posting data extraction agent. Analyze the page text below and extract the posting's details.

Rules:
1. Ignore navigation menus, footers, cookie banners, "similar jobs" lists and ads.
2. Respond with valid JSON only. No markdown fences, no commentary.
3. If a field cannot be determined, use the string "Not specified" — except hiring_manager, which must be "" when absent.

Output schema:
{
  "company": "the hiring company's name",
  "job_title": "the posting's title",
  "full_description": "the complete job description as plain text",
  "hiring_manager": "name of the recruiter/hiring contact if the page shows one, else \"\""
}

Source URL: %s

Page text:
%s`

func buildPrompt(excerpt, rawURL string) string {
	return fmt.Sprintf(extractionPrompt, rawURL, excerpt)
}
