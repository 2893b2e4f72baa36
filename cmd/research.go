package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"brandlens-cli/internal/agent"
	"brandlens-cli/internal/config"
	"brandlens-cli/internal/export"
	"brandlens-cli/internal/input"
	"brandlens-cli/internal/logger"
	"brandlens-cli/internal/normalize"
	"brandlens-cli/internal/render"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	researchFile     string
	researchOutput   string
	researchOutFile  string
	researchSort     string
	researchDesc     bool
	researchFilter   string
	researchSaveRaw  string
	researchSilent   bool
	researchDownload bool
)

var researchCmd = &cobra.Command{
	Use:   "research [brand ...]",
	Short: "Research brands through the AI agent",
	Long: `Submits brand names to the configured research agent and renders the
normalized results. Names can be passed as arguments or loaded from a CSV/TXT
file with --file.
Examples:
  brandlens research Nike Adidas
  brandlens research --file brands.csv -o csv --out brands_verified.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New(rootVerbose)
		defer log.Sync()

		names, err := collectBrandNames(args)
		if err != nil {
			return err
		}

		if config.GetAPIKey() == "" && !researchSilent {
			fmt.Fprintln(os.Stderr, "Warning: No API key configured. The agent call will likely be rejected.")
			fmt.Fprintln(os.Stderr, "Configure one using: brandlens config set-key <YOUR_API_KEY>")
			fmt.Fprintln(os.Stderr, "")
		}

		client := agent.NewClient(log)

		if !researchSilent {
			fmt.Fprintf(os.Stderr, "Researching %d brands...\n", len(names))
		}
		resp, err := client.CallAgent(cmd.Context(), researchMessage(names))
		if err != nil {
			return err
		}

		if researchSaveRaw != "" {
			rawPath := resolvePath(researchSaveRaw)
			if err := writeRawBody(resp, rawPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not save raw response: %v\n", err)
			} else if !researchSilent {
				fmt.Fprintf(os.Stderr, "Saved raw response to %s\n", rawPath)
			}
		}

		brands := normalize.ExtractBrands(resp)
		if len(brands) == 0 {
			return normalize.NewExtractionError(resp)
		}
		meta := countsFor(brands, normalize.ExtractMeta(resp))
		log.Debug("extraction finished",
			zap.Int("brands", len(brands)),
			zap.Int("total", meta.Total))

		brands = render.Filter(brands, researchFilter)
		brands = render.Sort(brands, render.SortKey(researchSort), researchDesc)

		artifacts := artifactURLs(resp)
		if err := emitResults(brands, meta, artifacts); err != nil {
			return err
		}

		if len(artifacts) > 0 {
			handleArtifacts(client, artifacts)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(researchCmd)
	researchCmd.Flags().StringVarP(&researchFile, "file", "f", "", "CSV/TXT file with brand names")
	researchCmd.Flags().StringVarP(&researchOutput, "output", "o", "table", "Output format: table, json, csv")
	researchCmd.Flags().StringVar(&researchOutFile, "out", "", "Output file path (default saved to 'result/' directory)")
	researchCmd.Flags().StringVar(&researchSort, "sort", "name", "Sort column: name, status, category, confidence")
	researchCmd.Flags().BoolVar(&researchDesc, "desc", false, "Sort descending")
	researchCmd.Flags().StringVar(&researchFilter, "filter", "", "Keep only brands matching this substring")
	researchCmd.Flags().StringVar(&researchSaveRaw, "save-raw", "", "Save the raw agent response body to a file")
	researchCmd.Flags().BoolVar(&researchSilent, "silent", false, "Suppress progress output")
	researchCmd.Flags().BoolVar(&researchDownload, "download-artifacts", false, "Download agent artifact files to 'result/'")
}

// collectBrandNames merges argument and file input, failing before any network
// call when nothing usable remains.
func collectBrandNames(args []string) ([]string, error) {
	names := input.ParseBrandNames(strings.Join(args, "\n"))
	if researchFile != "" {
		fromFile, err := input.ReadBrandFile(researchFile)
		if err != nil {
			return nil, err
		}
		names = append(names, fromFile...)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no brand names given: pass them as arguments or with --file")
	}
	return names, nil
}

func researchMessage(names []string) string {
	return fmt.Sprintf("Research the following brands and return the structured brand data as JSON: %s",
		strings.Join(names, ", "))
}

// countsFor fills in aggregate counts from the brand list itself when the
// response carried none.
func countsFor(brands []normalize.Brand, meta normalize.ResponseMeta) normalize.ResponseMeta {
	if meta.Total > 0 {
		return meta
	}
	meta = normalize.ResponseMeta{Total: len(brands)}
	for _, b := range brands {
		if b.Status == normalize.StatusComplete {
			meta.Complete++
		} else {
			meta.Partial++
		}
	}
	return meta
}

func artifactURLs(resp *agent.AgentResponse) []string {
	if resp.ModuleOutputs == nil {
		return nil
	}
	urls := make([]string, 0, len(resp.ModuleOutputs.ArtifactFiles))
	for _, f := range resp.ModuleOutputs.ArtifactFiles {
		if f.FileURL != "" {
			urls = append(urls, f.FileURL)
		}
	}
	return urls
}

func writeRawBody(resp *agent.AgentResponse, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, resp.Body, 0644)
}

// emitResults writes the brand list in the selected format to stdout or the
// --out file.
func emitResults(brands []normalize.Brand, meta normalize.ResponseMeta, artifacts []string) error {
	out := os.Stdout
	if researchOutFile != "" {
		finalPath := resolvePath(researchOutFile)
		if err := os.MkdirAll(filepath.Dir(finalPath), 0755); err != nil {
			return fmt.Errorf("creating result directory: %w", err)
		}
		file, err := os.Create(finalPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close()
		out = file
		if !researchSilent {
			absPath, _ := filepath.Abs(finalPath)
			fmt.Fprintf(os.Stderr, "Saving output to %s\n", absPath)
		}
	}

	switch strings.ToLower(researchOutput) {
	case "json":
		return export.WriteJSON(out, export.Results{Brands: brands, Meta: meta, Artifacts: artifacts})
	case "csv":
		return export.WriteCSV(out, brands)
	case "table":
		render.Table(out, brands)
		if !researchSilent {
			fmt.Fprintln(os.Stderr, render.MetaLine(meta))
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", researchOutput)
	}
}

func handleArtifacts(client *agent.Client, urls []string) {
	if !researchDownload {
		if !researchSilent {
			fmt.Fprintln(os.Stderr, "Artifact files:")
			for _, u := range urls {
				fmt.Fprintf(os.Stderr, "- %s\n", u)
			}
		}
		return
	}
	if err := os.MkdirAll("result", 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating result directory: %v\n", err)
		return
	}
	for _, u := range urls {
		name := filepath.Base(u)
		if name == "" || name == "." || name == "/" {
			name = sanitizeFilename(u)
		}
		dest := filepath.Join("result", name)
		if err := client.DownloadFile(u, dest); err != nil {
			fmt.Fprintf(os.Stderr, "Error downloading %s: %v\n", u, err)
			continue
		}
		if !researchSilent {
			fmt.Fprintf(os.Stderr, "Downloaded artifact to %s\n", dest)
		}
	}
}

// sanitizeFilename replaces characters that are illegal/unsafe in filenames
func sanitizeFilename(name string) string {
	reg := regexp.MustCompile(`[\\/:*?"<>|]`)
	safe := reg.ReplaceAllString(name, "_")
	safe = strings.Trim(safe, " .")
	if safe == "" {
		return "research_result"
	}
	return safe
}

func resolvePath(path string) string {
	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "result"+string(os.PathSeparator)) && !strings.HasPrefix(path, "result/") {
		return filepath.Join("result", path)
	}
	return path
}
