// Package seed populates a fresh install with a demo tenant and enough
// posts to make every page type render with real-looking content.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/InkwellLabs/inkwell/internal/content"
	"github.com/InkwellLabs/inkwell/internal/tenant"
	"github.com/InkwellLabs/inkwell/pkg/models"
	"go.uber.org/zap"
)

// DemoTenant creates the demo tenant and its posts. Idempotent: if the
// tenant already exists nothing is written.
func DemoTenant(ctx context.Context, tenants *tenant.Store, posts *content.Store, slug string, logger *zap.Logger) error {
	if _, err := tenants.GetBySlug(ctx, slug); err == nil {
		logger.Debug("demo tenant already seeded", zap.String("slug", slug))
		return nil
	} else if !errors.Is(err, tenant.ErrNotFound) {
		return fmt.Errorf("check demo tenant: %w", err)
	}

	t := models.Tenant{
		Slug:    slug,
		Name:    "The Daily Brew",
		ThemeID: "aurora",
		Brand: models.BrandSettings{
			Branding: models.Branding{
				FooterText: "Brewed fresh every morning.",
			},
		},
	}
	if err := tenants.Create(ctx, &t); err != nil {
		return fmt.Errorf("create demo tenant: %w", err)
	}

	for i, p := range demoPosts() {
		// Stagger publish dates so archive ordering is visible.
		p.PublishedAt = time.Now().UTC().AddDate(0, 0, -i*3)
		if err := posts.CreatePost(ctx, t.ID, &p); err != nil {
			return fmt.Errorf("seed post %q: %w", p.Slug, err)
		}
	}

	logger.Info("demo tenant seeded",
		zap.String("slug", slug),
		zap.String("theme_id", t.ThemeID))
	return nil
}

func demoPosts() []models.Post {
	return []models.Post{
		{
			Slug:     "pour-over-fundamentals",
			Title:    "Pour-Over Fundamentals",
			Excerpt:  "Grind size, water temperature, and the bloom: the three variables that matter.",
			Content:  "<p>Every pour-over recipe on the internet disagrees with every other one, but they all agree on three things: grind size, water temperature, and the bloom.</p><p>Start with a medium grind, water just off the boil, and a thirty-second bloom. Adjust one variable at a time.</p>",
			Author:   "Maya Chen",
			Category: "Brewing",
			Tags:     []string{"coffee", "technique"},
			Featured: true,
		},
		{
			Slug:     "choosing-a-burr-grinder",
			Title:    "Choosing a Burr Grinder",
			Excerpt:  "Why burr beats blade, and where the money actually goes.",
			Content:  "<p>A blade grinder chops. A burr grinder crushes to a consistent size. Consistency is the whole game, because extraction tracks particle size.</p><p>Under a hundred dollars, buy a hand grinder. The motor is where cheap electric grinders cut corners.</p>",
			Author:   "Maya Chen",
			Category: "Gear",
			Tags:     []string{"coffee", "gear"},
		},
		{
			Slug:     "single-origin-vs-blends",
			Title:    "Single Origin vs. Blends",
			Excerpt:  "Neither is better. They solve different problems.",
			Content:  "<p>Single origins showcase a place and a season. Blends aim for a consistent cup twelve months a year.</p><p>If you drink coffee black and like surprises, buy single origin. If you add milk, a blend built for it will taste better than most single origins.</p>",
			Author:   "Jonah Park",
			Category: "Beans",
			Tags:     []string{"coffee", "beans"},
		},
		{
			Slug:     "cold-brew-ratios",
			Title:    "Cold Brew Ratios That Work",
			Excerpt:  "A concentrate you can cut to taste beats a ready-to-drink batch.",
			Content:  "<p>Brew at one part coffee to five parts water by weight, steep twelve to sixteen hours at room temperature, then dilute in the glass.</p><p>Brewing a concentrate keeps the batch flexible: cut it with water, milk, or tonic.</p>",
			Author:   "Jonah Park",
			Category: "Brewing",
			Tags:     []string{"coffee", "cold-brew"},
		},
		{
			Slug:     "reading-a-roast-date",
			Title:    "Reading a Roast Date",
			Excerpt:  "Fresh is not always better. Here is the window that matters.",
			Content:  "<p>Coffee needs a few days off-gassing after roast before it brews well. The sweet spot for most roasts is one to four weeks after the printed date.</p><p>If the bag shows a best-by date instead of a roast date, the roaster is hiding something.</p>",
			Author:   "Maya Chen",
			Category: "Beans",
			Tags:     []string{"coffee", "beans", "technique"},
		},
		{
			Slug:     "water-chemistry-basics",
			Title:    "Water Chemistry Basics",
			Excerpt:  "The cheapest upgrade to your cup is the thing you brew with.",
			Content:  "<p>Coffee is mostly water, and minerals drive extraction. Distilled water brews flat; hard tap water brews muddy.</p><p>A remineralization packet in a gallon of distilled water is the most repeatable starting point.</p>",
			Author:   "Priya Natarajan",
			Category: "Brewing",
			Tags:     []string{"coffee", "water"},
		},
	}
}
