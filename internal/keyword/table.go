// Package keyword implements the offline rule-based industry classifier.
//
// Classification scores input text against a fixed table mapping industries
// to keyword lists. The table's iteration order is part of the observable
// contract: ties between industries are broken by table position, so the
// table is an ordered slice rather than a map.
package keyword

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry maps one industry label to its keyword list.
type Entry struct {
	Industry string   `yaml:"industry"`
	Keywords []string `yaml:"keywords"`
}

// Table is an ordered industry-to-keywords mapping. Loaded once at startup
// and never mutated afterwards.
type Table struct {
	entries []Entry
}

// NewTable builds a table from the given entries, validating that every
// industry is unique and every keyword is non-empty and lower-case.
func NewTable(entries []Entry) (*Table, error) {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Industry == "" {
			return nil, fmt.Errorf("table entry has empty industry label")
		}
		if seen[e.Industry] {
			return nil, fmt.Errorf("duplicate industry %q in table", e.Industry)
		}
		seen[e.Industry] = true

		if len(e.Keywords) == 0 {
			return nil, fmt.Errorf("industry %q has no keywords", e.Industry)
		}
		for _, kw := range e.Keywords {
			if strings.TrimSpace(kw) == "" {
				return nil, fmt.Errorf("industry %q has an empty keyword", e.Industry)
			}
			if kw != strings.ToLower(kw) {
				return nil, fmt.Errorf("industry %q keyword %q is not lower-case", e.Industry, kw)
			}
		}
	}

	return &Table{entries: entries}, nil
}

// LoadTable reads a keyword table from a YAML file. The file holds a list of
// entries so that on-disk order carries through to tie-break order.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword table: %w", err)
	}

	var doc struct {
		Industries []Entry `yaml:"industries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse keyword table: %w", err)
	}
	if len(doc.Industries) == 0 {
		return nil, fmt.Errorf("keyword table %s defines no industries", path)
	}

	return NewTable(doc.Industries)
}

// Entries returns the table entries in iteration order.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Industries returns the industry labels in table order.
func (t *Table) Industries() []string {
	labels := make([]string, len(t.entries))
	for i, e := range t.entries {
		labels[i] = e.Industry
	}
	return labels
}

// DefaultTable returns the built-in keyword table, oriented toward common
// tech and startup segments.
func DefaultTable() *Table {
	return &Table{entries: []Entry{
		{Industry: "SaaS", Keywords: []string{"saas", "software as a service", "cloud software", "subscription-based software", "platform as a service", "crm", "erp", "hr software", "marketing automation", "enterprise software"}},
		{Industry: "FinTech", Keywords: []string{"fintech", "finance technology", "payment", "banking", "lending", "investment", "blockchain", "cryptocurrency", "financial services", "insurtech"}},
		{Industry: "EdTech", Keywords: []string{"edtech", "education technology", "e-learning", "online learning", "course platform", "educational software", "school management", "learning management system"}},
		{Industry: "HealthTech", Keywords: []string{"healthtech", "healthcare technology", "medical devices", "biotech", "pharmaceutical", "digital health", "telehealth", "health data", "medtech", "diagnostics"}},
		{Industry: "AI/ML", Keywords: []string{"ai", "artificial intelligence", "machine learning", "deep learning", "nlp", "natural language processing", "computer vision", "data science", "predictive analytics", "generative ai", "neural networks"}},
		{Industry: "Cybersecurity", Keywords: []string{"cybersecurity", "security software", "threat intelligence", "data protection", "network security", "endpoint security", "firewall", "infosec"}},
		{Industry: "E-commerce", Keywords: []string{"e-commerce", "online retail", "marketplace", "shopify", "digital storefront", "retail tech", "online shopping"}},
		{Industry: "HR Tech", Keywords: []string{"hr tech", "human resources software", "recruitment platform", "talent management", "payroll software", "workforce management"}},
		{Industry: "Marketing Tech", Keywords: []string{"martech", "marketing technology", "adtech", "advertising technology", "crm", "marketing automation", "sales enablement"}},
		{Industry: "PropTech", Keywords: []string{"proptech", "real estate technology", "property management software", "smart building", "construction tech"}},
		{Industry: "LegalTech", Keywords: []string{"legaltech", "legal software", "legal practice management", "e-discovery", "legal ai"}},
		{Industry: "Agritech", Keywords: []string{"agritech", "agriculture technology", "precision farming", "farm management", "crop science", "foodtech"}},
		{Industry: "Logistics Tech", Keywords: []string{"logistics tech", "supply chain management", "transportation software", "fleet management"}},
		{Industry: "Automotive Tech", Keywords: []string{"automotive tech", "electric vehicles", "autonomous driving", "vehicle software"}},
		{Industry: "CleanTech", Keywords: []string{"cleantech", "renewable energy", "sustainability", "environmental technology", "waste management"}},
		{Industry: "Gaming", Keywords: []string{"gaming", "game development", "esports", "interactive entertainment"}},
		{Industry: "Media & Entertainment", Keywords: []string{"media tech", "streaming platform", "content creation", "digital media", "broadcasting"}},
		{Industry: "Biotechnology", Keywords: []string{"biotech", "biotechnology", "life sciences", "genomics", "drug discovery"}},
		{Industry: "Consulting", Keywords: []string{"consulting", "advisory services", "strategy consulting", "business services"}},
		{Industry: "Manufacturing", Keywords: []string{"manufacturing", "industrial", "robotics", "automation", "production"}},
		{Industry: "IT Services", Keywords: []string{"information technology and services", "it services", "managed services", "software development services", "system integration"}},
	}}
}
