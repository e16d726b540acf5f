package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/thinkle/sbgsync/ent"
	"github.com/thinkle/sbgsync/ent/level"
	"github.com/thinkle/sbgsync/ent/setting"

	"github.com/thinkle/sbgsync/internal/grading"
)

// gradingConfigRepo implements GradingConfigRepo using the ent client.
type gradingConfigRepo struct {
	client *ent.Client
}

func (r *gradingConfigRepo) Seed(ctx context.Context, symbols []grading.Symbol, levels []grading.Level, fb grading.Fallbacks) error {
	n, err := r.client.Symbol.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count symbols: %w", err)
	}
	if n == 0 {
		for _, s := range symbols {
			_, err := r.client.Symbol.Create().
				SetCharacter(s.Character).
				SetMastery(s.Mastery).
				SetGlyph(s.Glyph).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("seed symbol %q: %w", s.Character, err)
			}
		}
	}

	n, err = r.client.Level.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count levels: %w", err)
	}
	if n == 0 {
		for i, l := range levels {
			_, err := r.client.Level.Create().
				SetName(l.Name).
				SetShortCode(l.ShortCode).
				SetPosition(i).
				SetRequiredStreak(l.RequiredStreak).
				SetScore(l.Score).
				SetDefaultAttempts(l.DefaultAttempts).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("seed level %q: %w", l.Name, err)
			}
		}
	}

	if err := r.putSetting(ctx, settingNoneCorrect, strconv.FormatFloat(fb.NoneCorrectScore, 'f', -1, 64)); err != nil {
		return err
	}
	if err := r.putSetting(ctx, settingSomeCorrect, strconv.FormatFloat(fb.SomeCorrectScore, 'f', -1, 64)); err != nil {
		return err
	}
	return nil
}

const (
	settingNoneCorrect = "fallback.none_correct_score"
	settingSomeCorrect = "fallback.some_correct_score"
)

func (r *gradingConfigRepo) putSetting(ctx context.Context, key, value string) error {
	existing, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query setting %q: %w", key, err)
	}
	if existing != nil {
		if _, err := existing.Update().SetValue(value).Save(ctx); err != nil {
			return fmt.Errorf("update setting %q: %w", key, err)
		}
		return nil
	}
	if _, err := r.client.Setting.Create().SetKey(key).SetValue(value).Save(ctx); err != nil {
		return fmt.Errorf("create setting %q: %w", key, err)
	}
	return nil
}

func (r *gradingConfigRepo) Fallbacks(ctx context.Context) (grading.Fallbacks, error) {
	fb := grading.DefaultFallbacks()

	none, err := r.getSetting(ctx, settingNoneCorrect)
	if err != nil {
		return fb, err
	}
	if none != "" {
		if v, err := strconv.ParseFloat(none, 64); err == nil {
			fb.NoneCorrectScore = v
		}
	}

	some, err := r.getSetting(ctx, settingSomeCorrect)
	if err != nil {
		return fb, err
	}
	if some != "" {
		if v, err := strconv.ParseFloat(some, 64); err == nil {
			fb.SomeCorrectScore = v
		}
	}
	return fb, nil
}

func (r *gradingConfigRepo) getSetting(ctx context.Context, key string) (string, error) {
	row, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query setting %q: %w", key, err)
	}
	return row.Value, nil
}

func (r *gradingConfigRepo) Symbols(ctx context.Context) ([]grading.Symbol, error) {
	rows, err := r.client.Symbol.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query symbols: %w", err)
	}
	out := make([]grading.Symbol, 0, len(rows))
	for _, s := range rows {
		out = append(out, grading.Symbol{
			Character: s.Character,
			Mastery:   s.Mastery,
			Glyph:     s.Glyph,
		})
	}
	return out, nil
}

func (r *gradingConfigRepo) Levels(ctx context.Context) ([]grading.Level, error) {
	rows, err := r.client.Level.Query().
		Order(ent.Asc(level.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query levels: %w", err)
	}
	out := make([]grading.Level, 0, len(rows))
	for _, l := range rows {
		out = append(out, grading.Level{
			Name:            l.Name,
			ShortCode:       l.ShortCode,
			RequiredStreak:  l.RequiredStreak,
			Score:           l.Score,
			DefaultAttempts: l.DefaultAttempts,
		})
	}
	return out, nil
}
