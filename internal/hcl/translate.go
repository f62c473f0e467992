package hcl

import "github.com/vk/joltage/internal/config"

// translateSource converts the HCL-specific source schema into the agnostic model.
func translateSource(s *sourceBlock) *config.Source {
	return &config.Source{Name: s.Name, Path: s.Path}
}

// translatePart converts the HCL-specific part schema into the agnostic model.
func translatePart(p *partBlock) *config.Part {
	return &config.Part{Name: p.Name, Digits: p.Digits}
}
