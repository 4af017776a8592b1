// Package prompts turns a project context and a post plan into the three
// prompt artifacts used for generation. Everything here is pure: no I/O, no
// clock, no randomness. For identical inputs the output is byte-identical.
package prompts

import (
	"fmt"
	"strings"

	"content-planner/models"
)

// ComposeSystemPrompt renders the Layer-1 structural rules interpolated with
// the project's Layer-2 data, in a fixed section order.
func ComposeSystemPrompt(pc *models.ProjectContext, post *models.Post) string {
	var b strings.Builder

	// Persona. Primary keyword and locations appear up front so the opening
	// instructions already carry the article's target.
	fmt.Fprintf(&b, "You are the in-house content writer for %s.", displayName(pc))
	fmt.Fprintf(&b, " You are writing one article targeting the primary keyword %q", post.PrimaryKeyword)
	if len(pc.Business.Locations) > 0 {
		fmt.Fprintf(&b, " for readers in %s.", strings.Join(pc.Business.Locations, ", "))
	} else {
		b.WriteString(" for readers nationwide.")
	}
	b.WriteString("\n\n")

	if pc.GlobalContext != "" {
		b.WriteString("SOURCE OF TRUTH (treat as fact, never contradict):\n")
		b.WriteString(pc.GlobalContext)
		b.WriteString("\n\n")
	}

	b.WriteString("AUDIENCE AND BUSINESS GOALS:\n")
	if pc.Business.TargetAudience != "" {
		fmt.Fprintf(&b, "- Target audience: %s\n", pc.Business.TargetAudience)
	}
	if len(pc.Business.Services) > 0 {
		fmt.Fprintf(&b, "- Services offered: %s\n", strings.Join(pc.Business.Services, ", "))
	}
	if len(pc.Business.PainPoints) > 0 {
		fmt.Fprintf(&b, "- Reader pain points to speak to: %s\n", strings.Join(pc.Business.PainPoints, "; "))
	}
	if len(pc.Business.DesiredActions) > 0 {
		fmt.Fprintf(&b, "- Actions the article should drive: %s\n", strings.Join(pc.Business.DesiredActions, "; "))
	}
	b.WriteString("\n")

	b.WriteString("BRAND VOICE:\n")
	if pc.Brand.Tone != "" {
		fmt.Fprintf(&b, "- Tone: %s\n", pc.Brand.Tone)
	}
	if pc.Brand.WritingStyle != "" {
		fmt.Fprintf(&b, "- Writing style: %s\n", pc.Brand.WritingStyle)
	}
	if pc.Brand.ReadingLevel != "" {
		fmt.Fprintf(&b, "- Reading level: %s\n", pc.Brand.ReadingLevel)
	}
	for _, dn := range pc.Brand.DoNots {
		fmt.Fprintf(&b, "- Do NOT: %s\n", dn)
	}
	if pc.Brand.ComplianceStance != "" {
		fmt.Fprintf(&b, "- Compliance stance: %s\n", pc.Brand.ComplianceStance)
	}
	b.WriteString("\n")

	b.WriteString(structureContract)
	b.WriteString("\n\n")

	b.WriteString("LOCALIZATION:\n")
	if len(pc.Business.Locations) > 0 {
		fmt.Fprintf(&b, "Mention the target locations naturally within the article: %s. Do not force every location into every section.\n", strings.Join(pc.Business.Locations, ", "))
	} else {
		b.WriteString("No specific locations are configured. Where service area matters, refer to nationwide coverage.\n")
	}
	b.WriteString("\n")

	b.WriteString(keywordRules)
	b.WriteString("\n\n")

	b.WriteString(linkingRules)
	b.WriteString("\n")
	candidates := linkCandidates(pc.DomainInfo.URLs, post.PrimaryKeyword)
	if len(candidates) > 0 {
		fmt.Fprintf(&b, "Aim for roughly %d internal links. Choose only from these known URLs:\n", linkDensity(pc))
		for _, u := range candidates {
			fmt.Fprintf(&b, "- %s\n", u)
		}
	} else {
		b.WriteString("No internal link candidates are available; do not invent internal URLs.\n")
	}
	b.WriteString("\n")

	b.WriteString("CALL TO ACTION:\n")
	if pc.SEORules.CTAGoal != "" || pc.SEORules.CTALink != "" {
		fmt.Fprintf(&b, "Close the article with a call to action for: %s", pc.SEORules.CTAGoal)
		if pc.SEORules.CTALink != "" {
			fmt.Fprintf(&b, " linking to %s", pc.SEORules.CTALink)
		}
		b.WriteString(".\n")
	} else {
		b.WriteString("Close the article with a natural invitation to get in touch.\n")
	}
	b.WriteString("\n")

	b.WriteString(faqRule)
	b.WriteString("\n\n")

	if block, ok := angleInstructions[post.ContentAngle]; ok {
		b.WriteString(block)
		b.WriteString("\n\n")
	}

	if len(pc.Business.ApprovedEquipment) > 0 || len(pc.Business.ForbiddenEquipment) > 0 {
		b.WriteString("OPERATIONAL REALITIES:\n")
		if len(pc.Business.ApprovedEquipment) > 0 {
			fmt.Fprintf(&b, "Equipment and methods the business actually uses (safe to reference): %s\n", strings.Join(pc.Business.ApprovedEquipment, ", "))
		}
		if len(pc.Business.ForbiddenEquipment) > 0 {
			fmt.Fprintf(&b, "STRICTLY FORBIDDEN to mention or imply: %s\n", strings.Join(pc.Business.ForbiddenEquipment, ", "))
		}
		b.WriteString("\n")
	}

	if pc.Styling.ReferenceHTML != "" {
		b.WriteString("STYLING REFERENCE (match this markup and styling exactly):\n")
		b.WriteString(pc.Styling.ReferenceHTML)
		b.WriteString("\n")
	} else {
		b.WriteString(plainMarkupInstruction)
		b.WriteString("\n")
	}

	return b.String()
}

// ComposeUserPrompt renders the per-post task specifics and the exact output
// format contract.
func ComposeUserPrompt(pc *models.ProjectContext, post *models.Post) string {
	var b strings.Builder

	b.WriteString("Write the article now.\n\n")
	fmt.Fprintf(&b, "Topic: %s\n", post.Topic)
	fmt.Fprintf(&b, "Primary keyword: %s\n", post.PrimaryKeyword)
	if post.SearchIntent != "" {
		fmt.Fprintf(&b, "Search intent: %s\n", post.SearchIntent)
	}
	fmt.Fprintf(&b, "Content angle: %s\n", post.ContentAngle)
	if len(post.SecondaryKeywords) > 0 {
		fmt.Fprintf(&b, "Secondary keywords: %s\n", strings.Join(post.SecondaryKeywords, ", "))
	}
	b.WriteString("\n")

	b.WriteString("KEYWORD USAGE, in priority order:\n")
	fmt.Fprintf(&b, "1. Primary keyword (mandatory, see structural rules): %s\n", post.PrimaryKeyword)
	if len(post.SecondaryKeywords) > 0 {
		fmt.Fprintf(&b, "2. Secondary keywords (weave in naturally): %s\n", strings.Join(post.SecondaryKeywords, ", "))
	}
	if supporting := supportingKeywords(pc, post); len(supporting) > 0 {
		fmt.Fprintf(&b, "3. Supporting keywords (use ONLY where they genuinely fit): %s\n", strings.Join(supporting, ", "))
	}
	if len(pc.Keywords.Negative) > 0 {
		fmt.Fprintf(&b, "4. Negative keywords (do not use under any circumstances): %s\n", strings.Join(pc.Keywords.Negative, ", "))
	}
	b.WriteString("\n")

	if post.Notes != "" {
		b.WriteString("NOTES FROM THE PLANNER:\n")
		b.WriteString(post.Notes)
		b.WriteString("\n\n")
	}

	b.WriteString("OUTPUT FORMAT (exact):\n")
	b.WriteString("First output a single fenced JSON metadata block:\n")
	b.WriteString("```json\n{\"seo_title\": \"...\", \"meta_description\": \"...\"}\n```\n")
	b.WriteString("Immediately after the closing fence output the raw article HTML. Do not wrap the HTML in markdown fences or any additional formatting.\n")

	return b.String()
}

// ComposeImagePrompt renders a photorealistic image brief for the article's
// hero image.
func ComposeImagePrompt(pc *models.ProjectContext, post *models.Post) string {
	var b strings.Builder

	setting := "residential"
	if isCommercialAudience(pc.Business.TargetAudience) {
		setting = "commercial"
	}

	fmt.Fprintf(&b, "Photorealistic photograph for an article about %s (%s).", post.Topic, post.PrimaryKeyword)
	if post.SearchIntent != "" {
		fmt.Fprintf(&b, " The reader's intent: %s.", post.SearchIntent)
	}
	fmt.Fprintf(&b, " Shot in a realistic %s setting with natural lighting.", setting)
	if len(pc.Business.ApprovedEquipment) > 0 {
		fmt.Fprintf(&b, " Feature only this equipment: %s.", strings.Join(pc.Business.ApprovedEquipment, ", "))
	}
	if len(pc.Business.ForbiddenEquipment) > 0 {
		fmt.Fprintf(&b, " Never show: %s.", strings.Join(pc.Business.ForbiddenEquipment, ", "))
	}
	b.WriteString(" ")
	b.WriteString(imageNoTextRule)

	return b.String()
}

func displayName(pc *models.ProjectContext) string {
	if pc.ProjectName != "" {
		return pc.ProjectName
	}
	return "the business"
}

func linkDensity(pc *models.ProjectContext) int {
	if pc.SEORules.InternalLinkDensity > 0 {
		return pc.SEORules.InternalLinkDensity
	}
	return 3
}

// linkCandidates filters known URLs down to at most maxLinkCandidates,
// excluding any URL that contains the slugified primary keyword. The slug
// containment check is a deliberate heuristic for avoiding self-links.
func linkCandidates(urls []string, primaryKeyword string) []string {
	slug := Slugify(primaryKeyword)
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if slug != "" && strings.Contains(u, slug) {
			continue
		}
		out = append(out, u)
		if len(out) == maxLinkCandidates {
			break
		}
	}
	return out
}

// supportingKeywords returns the project's general keyword bank minus the
// post's own primary and secondary keywords, preserving bank order.
func supportingKeywords(pc *models.ProjectContext, post *models.Post) []string {
	taken := make(map[string]bool, len(post.SecondaryKeywords)+1)
	taken[strings.ToLower(post.PrimaryKeyword)] = true
	for _, k := range post.SecondaryKeywords {
		taken[strings.ToLower(k)] = true
	}
	out := make([]string, 0, len(pc.Keywords.Target))
	for _, k := range pc.Keywords.Target {
		if taken[strings.ToLower(k)] {
			continue
		}
		out = append(out, k)
	}
	return out
}

var commercialMarkers = []string{
	"business", "commercial", "b2b", "compan", "corporate",
	"office", "facilit", "industrial", "enterprise",
}

// isCommercialAudience guesses the image setting from the audience
// description; anything not obviously commercial defaults to residential.
func isCommercialAudience(audience string) bool {
	a := strings.ToLower(audience)
	for _, m := range commercialMarkers {
		if strings.Contains(a, m) {
			return true
		}
	}
	return false
}
