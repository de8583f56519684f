// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Default admin credentials
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "changeme"
)

// Seed populates the store with a default admin user and a small set of
// demo content. Intended for development; enabled via CONSITE_DO_SEED.
func Seed(s *Store) error {
	if _, ok := s.UserByUsername(DefaultAdminUsername); ok {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}

	user, err := s.CreateUser(NewUserParams{
		Username: DefaultAdminUsername,
		Password: DefaultAdminPassword,
		IsAdmin:  true,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}
	slog.Info("created default admin user",
		"id", user.ID,
		"username", user.Username,
		"password", DefaultAdminPassword,
	)

	s.CreateTestimonial(NewTestimonialParams{
		Name:        "Jane Doe",
		Position:    "CTO",
		Company:     "Acme Logistics",
		Testimonial: "Their cloud migration team cut our release cycle from weeks to days.",
		Metric:      "37%",
		MetricTitle: "reduction in cloud spend",
		IsActive:    true,
	})
	s.CreateTestimonial(NewTestimonialParams{
		Name:        "Marco Ruiz",
		Position:    "Head of Engineering",
		Company:     "Northwind Health",
		Testimonial: "A pragmatic partner that understands regulated environments.",
		IsActive:    true,
	})

	if _, err := s.CreateResource(NewResourceParams{
		Title:       "Choosing a Cloud Migration Strategy",
		Slug:        "choosing-a-cloud-migration-strategy",
		Description: "Lift-and-shift, re-platform or rebuild: how to decide.",
		Content:     "## Six Rs\n\nEvery migration starts with an honest inventory...",
		ImageURL:    "/images/resources/cloud-migration.jpg",
		Categories:  []string{"cloud", "strategy"},
		Type:        "article",
		PublishedAt: time.Now(),
	}); err != nil {
		return fmt.Errorf("seeding resources: %w", err)
	}

	if _, err := s.CreateIndustryPage(NewIndustryPageParams{
		Title:       "Financial Services",
		Slug:        "financial-services",
		Headline:    "Modern infrastructure for regulated finance",
		Description: "Compliance-aware platform engineering for banks and insurers.",
		ImageURL:    "/images/industries/finance.jpg",
		Content:     json.RawMessage(`{"sections":[{"heading":"What we do","body":"Platform modernization under PCI and SOC 2 constraints."}]}`),
		IsPublished: true,
	}); err != nil {
		return fmt.Errorf("seeding industry pages: %w", err)
	}

	slog.Info("seeded demo content",
		"testimonials", len(s.ListTestimonials(TestimonialFilter{})),
		"resources", len(s.ListResources(ResourceFilter{})),
		"industry_pages", len(s.ListIndustryPages(IndustryPageFilter{})),
	)
	return nil
}
