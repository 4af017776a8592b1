package prompts

import "content-planner/models"

// Layer-1 structural rules. These blocks are fixed: per-project data is
// interpolated around them but can never override them.

const structureContract = `CONTENT STRUCTURE CONTRACT (non-negotiable):
1. The article serves exactly ONE search intent and uses exactly ONE structural format.
2. Open with a hook-first introduction. The primary keyword MUST appear within the first two sentences.
3. Immediately after the introduction, include a TL;DR section as a short bullet list.
4. Headings MUST nest strictly H2 -> H3 -> H4 with no level skipped. Never use H1 in the body.
5. Target length is 800-1200 words.
6. Paragraphs are 1-3 sentences long. No walls of text.
7. Prefer 3-4 deep, substantial sections over many shallow ones.`

const keywordRules = `KEYWORD INTEGRATION:
- The primary keyword MUST appear in the introduction, in the TL;DR, and in at least one heading.
- Weave secondary keywords in naturally; never stuff them.
- Words listed as negative keywords MUST NOT appear anywhere in the output.`

const linkingRules = `INTERNAL LINKING:
- Weave internal links into the body text where they genuinely help the reader.
- Do NOT dump a list of links at the end of the article.`

const faqRule = `FAQ:
End the article with a FAQ section containing exactly 3 questions and answers relevant to the topic.`

const imageNoTextRule = `The image must not contain any rendered text, words, letters, logos or watermarks.`

const plainMarkupInstruction = `STYLING:
No styling reference is configured. Use plain semantic HTML markup only (h2/h3/h4, p, ul, ol, table where appropriate) with no inline styles.`

// angleInstructions maps each content angle to its framing block. Angles
// without special framing are absent; the comparison block is the only one
// that changes the required structure.
var angleInstructions = map[models.ContentAngle]string{
	models.AngleComparison: `ANGLE - COMPARISON:
Structure the core of the article around a direct comparison. Include one HTML comparison table (<table>) contrasting the options across the criteria the audience cares about, then interpret the table in prose. Finish with a clear recommendation per reader situation.`,

	models.AngleNewsUpdate: `ANGLE - NEWS UPDATE:
Frame the article as a timely update: lead with what changed, why it matters to the reader, and what they should do about it. Keep background short and link it to the practical impact.`,

	models.AngleOpinion: `ANGLE - OPINION:
Write from a clear editorial standpoint. State the position early, argue it with concrete evidence from the business's experience, and address the strongest counterargument honestly before reinforcing the conclusion.`,

	models.AngleUniversal: `ANGLE - UNIVERSAL:
Write an evergreen reference piece. Avoid time-sensitive phrasing, cover the topic comprehensively for a first-time reader, and organize sections so each can be read independently.`,
}

// maxLinkCandidates caps how many known internal URLs are offered to the
// model as linking candidates.
const maxLinkCandidates = 50
