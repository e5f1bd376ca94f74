package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/jsonld"
)

// runRecipes aggregates recipe records. Total time is derived from prep
// and cook times after the scan.
func (e *Engine) runRecipes(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	kind := richmark.KindRecipe
	acc := newAccumulator[richmark.Recipe]()

	err := e.scan(inv.doc, kind, func(id, field string, el richmark.Element) error {
		recipe, err := acc.get(id, func() (*richmark.Recipe, error) {
			return &richmark.Recipe{ID: id, URL: e.deepLink(inv, id)}, nil
		})
		if err != nil {
			return err
		}
		ref := e.ref(kind, id, field)
		switch field {
		case "name":
			recipe.Name = strings.TrimSpace(el.Text())
		case "image":
			src, err := imageField(ref, el)
			if err != nil {
				return err
			}
			recipe.Images = append(recipe.Images, src)
		case "description":
			recipe.Description = StripText(el.Text())
		case "author":
			recipe.Author = strings.TrimSpace(el.Text())
		case "datepublished":
			d, err := NormalizeDate(el.Text(), e.cfg.DateFormat)
			if err != nil {
				return wrapRef(ref, err)
			}
			recipe.DatePublished = d
		case "preptime":
			d, err := Duration(el.Text(), e.cfg.Durations)
			if err != nil {
				return wrapRef(ref, err)
			}
			recipe.PrepTime = d
		case "cooktime":
			d, err := Duration(el.Text(), e.cfg.Durations)
			if err != nil {
				return wrapRef(ref, err)
			}
			recipe.CookTime = d
		case "keywords":
			recipe.Keywords = strings.TrimSpace(el.Text())
		case "yield":
			recipe.Yield = strings.TrimSpace(el.Text())
		case "category":
			recipe.Category = strings.TrimSpace(el.Text())
		case "cuisine":
			recipe.Cuisine = strings.TrimSpace(el.Text())
		case "calories":
			recipe.Calories = strings.TrimSpace(el.Text())
		case "ingredient":
			recipe.Ingredients = append(recipe.Ingredients, strings.TrimSpace(el.Text()))
		case "step":
			step := richmark.HowToStep{
				Text: StripText(el.Text()),
				URL:  recipe.URL,
			}
			if name, ok := el.Data("name"); ok {
				step.Name = name
			}
			if img, ok := el.Data("image"); ok {
				step.Image = img
			}
			if step.Text == "" {
				return richmark.Errorf(richmark.EINVALID, "%s: instruction step has no text", ref)
			}
			recipe.Instructions = append(recipe.Instructions, step)
		case "rating":
			rating, err := ratingField(ref, el)
			if err != nil {
				return err
			}
			recipe.Rating = rating
		case "review":
			review, err := reviewField(ref, el)
			if err != nil {
				return err
			}
			recipe.Reviews = append(recipe.Reviews, review)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if acc.empty() {
		return nil, nil
	}

	recipes := acc.records()
	for _, r := range recipes {
		if r.Name == "" {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: name is required", e.cfg.BaseID(kind), r.ID)
		}
		if len(r.Images) == 0 {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: at least one image is required", e.cfg.BaseID(kind), r.ID)
		}
		total, err := AddDurations(r.PrepTime, r.CookTime)
		if err != nil {
			return nil, err
		}
		r.TotalTime = total
	}
	return jsonld.Marshal(jsonld.Recipes(recipes, e.cfg.Carousel(kind)))
}

// runCourses aggregates course records.
func (e *Engine) runCourses(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	kind := richmark.KindCourse
	acc := newAccumulator[richmark.Course]()

	err := e.scan(inv.doc, kind, func(id, field string, el richmark.Element) error {
		course, err := acc.get(id, func() (*richmark.Course, error) {
			return &richmark.Course{ID: id, URL: e.deepLink(inv, id)}, nil
		})
		if err != nil {
			return err
		}
		ref := e.ref(kind, id, field)
		switch field {
		case "name":
			course.Name = strings.TrimSpace(el.Text())
		case "description":
			course.Description = StripText(el.Text())
		case "provider":
			course.Provider = strings.TrimSpace(el.Text())
			if href, ok := el.Attr("href"); ok {
				course.ProviderURL = href
			}
		case "providerurl":
			href, err := linkField(ref, el)
			if err != nil {
				return err
			}
			course.ProviderURL = href
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if acc.empty() {
		return nil, nil
	}

	courses := acc.records()
	for _, c := range courses {
		if c.Name == "" {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: name is required", e.cfg.BaseID(kind), c.ID)
		}
	}
	return jsonld.Marshal(jsonld.Courses(courses, e.cfg.Carousel(kind)))
}
