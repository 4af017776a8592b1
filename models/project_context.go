package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComplianceStance controls how strictly generated copy must stick to the
// project's approved claims and methods.
type ComplianceStance string

const (
	ComplianceStrict  ComplianceStance = "Strict"
	ComplianceGeneral ComplianceStance = "General"
	ComplianceHelpful ComplianceStance = "Helpful"
)

// ProjectContext is the per-project profile that steers generation. The
// generation pipeline only ever reads it; mutation happens through an
// explicit save operation.
// Collection: project_contexts (unique on project_id)
type ProjectContext struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID primitive.ObjectID `bson:"project_id" json:"project_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	ProjectName   string       `bson:"project_name" json:"project_name"`
	Business      BusinessInfo `bson:"business" json:"business"`
	Brand         BrandInfo    `bson:"brand" json:"brand"`
	SEORules      SEORules     `bson:"seo_rules" json:"seo_rules"`
	Styling       Styling      `bson:"styling" json:"styling"`
	DomainInfo    DomainInfo   `bson:"domain_info" json:"domain_info"`
	Keywords      KeywordBank  `bson:"keywords" json:"keywords"`
	GlobalContext string       `bson:"global_context" json:"global_context"`
}

type BusinessInfo struct {
	Services       []string `bson:"services" json:"services"`
	TargetAudience string   `bson:"target_audience" json:"target_audience"`
	PainPoints     []string `bson:"pain_points" json:"pain_points"`
	DesiredActions []string `bson:"desired_actions" json:"desired_actions"`
	Locations      []string `bson:"locations" json:"locations"`

	// Operational realities: what the business actually uses and what must
	// never be claimed or depicted.
	ApprovedEquipment  []string `bson:"approved_equipment" json:"approved_equipment"`
	ForbiddenEquipment []string `bson:"forbidden_equipment" json:"forbidden_equipment"`
}

type BrandInfo struct {
	Tone             string           `bson:"tone" json:"tone"`
	WritingStyle     string           `bson:"writing_style" json:"writing_style"`
	ReadingLevel     string           `bson:"reading_level" json:"reading_level"`
	DoNots           []string         `bson:"do_nots" json:"do_nots"`
	ComplianceStance ComplianceStance `bson:"compliance_stance" json:"compliance_stance"`
}

type SEORules struct {
	HTagHierarchy       bool   `bson:"h_tag_hierarchy" json:"h_tag_hierarchy"`
	ShortIntro          bool   `bson:"short_intro" json:"short_intro"`
	ScannableLayout     bool   `bson:"scannable_layout" json:"scannable_layout"`
	GenerateTLDR        bool   `bson:"generate_tldr" json:"generate_tldr"`
	SemanticKeywords    bool   `bson:"semantic_keywords" json:"semantic_keywords"`
	IncludeImage        bool   `bson:"include_image" json:"include_image"`
	CTAGoal             string `bson:"cta_goal" json:"cta_goal"`
	CTALink             string `bson:"cta_link" json:"cta_link"`
	InternalLinkDensity int    `bson:"internal_link_density" json:"internal_link_density"`
}

type Styling struct {
	ReferenceHTML string `bson:"reference_html" json:"reference_html"`
	BrandColor    string `bson:"brand_color" json:"brand_color"`
}

type DomainInfo struct {
	URLs             []string   `bson:"urls" json:"urls"`
	Titles           []string   `bson:"titles" json:"titles"`
	SitemapFetchedAt *time.Time `bson:"sitemap_fetched_at,omitempty" json:"sitemap_fetched_at,omitempty"`
}

type KeywordBank struct {
	Target   []string `bson:"target" json:"target"`
	Negative []string `bson:"negative" json:"negative"`
}

// NewProjectContext returns the defaults a project starts with.
func NewProjectContext(projectID primitive.ObjectID, projectName string) *ProjectContext {
	return &ProjectContext{
		ProjectID:   projectID,
		ProjectName: projectName,
		Brand: BrandInfo{
			ComplianceStance: ComplianceGeneral,
		},
		SEORules: SEORules{
			HTagHierarchy:       true,
			ShortIntro:          true,
			ScannableLayout:     true,
			GenerateTLDR:        true,
			SemanticKeywords:    true,
			IncludeImage:        true,
			InternalLinkDensity: 3,
		},
	}
}
