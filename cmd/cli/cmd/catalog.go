package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"aws-recommender/core/catalog"
	"aws-recommender/core/types"
	"aws-recommender/internal/errors"
)

var catalogCategory string

// catalogCmd browses the service catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the service catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog services",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a service's scores, pros, cons and alternatives",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

func init() {
	catalogListCmd.Flags().StringVarP(&catalogCategory, "category", "c", "", "only list services in this category")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	w := newWriter(cmd)
	cat := catalog.Default()

	profiles := cat.All()
	if catalogCategory != "" {
		category, ok := findCategory(catalogCategory)
		if !ok {
			return errors.Newf(errors.TypeInput, "unknown category %q", catalogCategory)
		}
		profiles = cat.ByCategory(category)
	}

	table := w.NewTable("Service", "Category", "Description")
	for _, p := range profiles {
		table.AddRow(p.Name, string(p.Category), p.Description)
	}
	table.Render()

	stats := cat.Stats()
	w.Println("")
	w.Println("%s", w.Dim(fmt.Sprintf("%d of %d services", len(profiles), stats.Total)))
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	w := newWriter(cmd)

	profile, ok := findService(args[0])
	if !ok {
		return errors.NotFound("service", args[0])
	}

	w.Header(profile.Name + " (" + string(profile.Category) + ")")
	w.Println("%s", profile.Description)
	w.Println("")

	for _, c := range types.Criteria() {
		w.SubHeader(c.Label())
		table := w.NewTable("Answer", "Score")
		for _, v := range c.Values() {
			score := profile.Score(c, v)
			table.AddRow(v, w.Score(score, strconv.Itoa(score)))
		}
		table.Render()
	}

	w.SubHeader("Pros:")
	for _, pro := range profile.Pros {
		w.Println("  • %s", pro)
	}
	w.SubHeader("Cons:")
	for _, con := range profile.Cons {
		w.Println("  • %s", con)
	}
	w.SubHeader("Alternatives:")
	w.Println("  %s", strings.Join(profile.Alternatives, ", "))
	return nil
}

// findService matches a service name case-insensitively
func findService(name string) (catalog.ServiceProfile, bool) {
	cat := catalog.Default()
	if p, ok := cat.Get(name); ok {
		return p, true
	}
	for _, n := range cat.Names() {
		if strings.EqualFold(n, name) {
			return cat.Get(n)
		}
	}
	return catalog.ServiceProfile{}, false
}

func findCategory(name string) (catalog.Category, bool) {
	for _, c := range catalog.Categories() {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}
