// Package prompt serializes a reference article plus a bounded corpus
// sample into the fixed instructional templates sent to the model.
package prompt

import (
	"fmt"
	"math/rand"
	"strings"

	"newsrec/config"
	"newsrec/types"
)

const recommendationTemplate = `# SYSTEM: You are an expert news recommendation system that identifies relevant articles based on semantic similarity.

# TASK: Find 5 news articles most similar to the reference article below.

# REFERENCE ARTICLE:
TITLE: %s
CONTENT: %s

# AVAILABLE ARTICLES:
%s

# CRITERIA FOR SIMILARITY:
- Topic relevance (most important)
- Similar events or entities mentioned
- Similar perspectives or angles
- Content diversity (include different sources when possible)

# OUTPUT FORMAT:
Return a JSON array containing exactly 5 article recommendations.
Each recommendation must have only these fields:
- "title": The exact title of the article as shown in AVAILABLE ARTICLES
- "link": The exact link of the article as shown in AVAILABLE ARTICLES

# OUTPUT CONSTRAINTS:
- Return ONLY raw JSON with no markdown formatting, explanation, or commentary
- The output must be a parseable JSON array of 5 objects
- Do not include the reference article in recommendations
- Ensure all links are complete URLs

# EXAMPLE OUTPUT:
[
  {"title": "Example Article 1", "link": "https://example.com/1"},
  {"title": "Example Article 2", "link": "https://example.com/2"},
  {"title": "Example Article 3", "link": "https://example.com/3"},
  {"title": "Example Article 4", "link": "https://example.com/4"},
  {"title": "Example Article 5", "link": "https://example.com/5"}
]`

const keywordTemplate = `# TASK: Extract search keywords for finding videos related to this news article.

# ARTICLE:
TITLE: %s
CONTENT: %s

# OUTPUT CONSTRAINTS:
- Return a JSON array of 3 to 5 short keyword strings
- Return ONLY raw JSON with no markdown formatting, explanation, or commentary

# EXAMPLE OUTPUT:
["keyword one", "keyword two", "keyword three"]`

// BuildRecommendation embeds the reference article and a random sample
// of at most PromptSampleSize corpus articles into the recommendation
// template. A corpus at or under the sample size is used whole, in
// original order; random sampling otherwise avoids biasing toward
// whichever feed was ingested first.
func BuildRecommendation(refTitle, refContent string, corpus []types.Article) string {
	sample := sampleArticles(corpus, config.PromptSampleSize)

	records := make([]string, 0, len(sample))
	for i, a := range sample {
		records = append(records, fmt.Sprintf("ID: %d\nTITLE: %s\nLINK: %s\nSOURCE: %s",
			i, a.Title, a.Link, a.Source))
	}

	return fmt.Sprintf(recommendationTemplate, refTitle, refContent, strings.Join(records, "\n\n"))
}

// BuildKeywords asks for 3-5 video search keywords given the reference
// title and the first KeywordContentLimit characters of its content.
func BuildKeywords(title, content string) string {
	return fmt.Sprintf(keywordTemplate, title, truncate(content, config.KeywordContentLimit))
}

func sampleArticles(corpus []types.Article, n int) []types.Article {
	if len(corpus) <= n {
		return corpus
	}
	sample := make([]types.Article, 0, n)
	for _, idx := range rand.Perm(len(corpus))[:n] {
		sample = append(sample, corpus[idx])
	}
	return sample
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
