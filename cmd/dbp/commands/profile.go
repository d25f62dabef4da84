package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/domain"
)

var profileFile string

// profileDocument is the JSON form of a profile accepted by profile save
type profileDocument struct {
	Names []struct {
		First  string  `json:"first"`
		Last   string  `json:"last"`
		Middle *string `json:"middle,omitempty"`
		Suffix *string `json:"suffix,omitempty"`
	} `json:"names"`
	Addresses []struct {
		City    string  `json:"city"`
		State   string  `json:"state"`
		Street  *string `json:"street,omitempty"`
		ZipCode *string `json:"zipCode,omitempty"`
	} `json:"addresses"`
	Phones    []string `json:"phones,omitempty"`
	BirthYear int      `json:"birthYear"`
}

func (d profileDocument) toDomain() domain.Profile {
	var p domain.Profile
	for _, n := range d.Names {
		p.Names = append(p.Names, domain.Name{First: n.First, Last: n.Last, Middle: n.Middle, Suffix: n.Suffix})
	}
	for _, a := range d.Addresses {
		p.Addresses = append(p.Addresses, domain.Address{City: a.City, State: a.State, Street: a.Street, ZipCode: a.ZipCode})
	}
	p.Phones = d.Phones
	p.BirthYear = d.BirthYear
	return p
}

// readProfile parses a profile document
func readProfile(fs adapter.FileSystem, json adapter.JSON, path string) (domain.Profile, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("reading profile file: %w", err)
	}
	var doc profileDocument
	if err := json.UnmarshalStrict(data, &doc); err != nil {
		return domain.Profile{}, fmt.Errorf("parsing profile file: %w", err)
	}
	return doc.toDomain(), nil
}

// NewProfileCmd creates the profile command
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and manage the profile brokers are searched for",
		RunE:  runProfileShow,
	}

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Save the profile and start scanning",
		Long: `Save the profile from a JSON file and start scanning.

Example file:
  {
    "names": [{"first": "John", "last": "Doe"}],
    "addresses": [{"city": "Austin", "state": "TX"}],
    "phones": ["5125550100"],
    "birthYear": 1980
  }`,
		RunE: runProfileSave,
	}
	saveCmd.Flags().StringVar(&profileFile, "file", "", "Path to the profile JSON file")
	_ = saveCmd.MarkFlagRequired("file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved profile",
		RunE:  runProfileShow,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete all data and stop the agent",
		RunE:  runProfileDelete,
	}

	cmd.AddCommand(saveCmd, showCmd, deleteCmd)
	return cmd
}

func runProfileSave(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	ctx := cmd.Context()

	if err := a.requireEnabled(ctx); err != nil {
		return err
	}

	profile, err := readProfile(adapter.NewFileSystem(), adapter.NewJSON(), profileFile)
	if err != nil {
		return err
	}
	if err := a.dm.SaveProfile(ctx, profile); err != nil {
		return err
	}

	a.bridge.Wait()
	if err := a.delegate.Err(); err != nil {
		return fmt.Errorf("profile saved but the agent could not be started: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Profile saved, scanning started")
	return nil
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	profile, err := a.dm.FetchProfile(cmd.Context())
	if err != nil {
		return err
	}
	if profile == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No profile saved. Create one with: dbp profile save --file profile.json")
		return nil
	}

	if outputFormat == "json" {
		return printJSON(cmd, profile)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "FIELD\tVALUE\n")
	for _, n := range profile.Names {
		fmt.Fprintf(w, "Name\t%s\n", n.FullName())
	}
	for _, addr := range profile.Addresses {
		fmt.Fprintf(w, "Address\t%s, %s\n", addr.City, addr.State)
	}
	for _, p := range profile.Phones {
		fmt.Fprintf(w, "Phone\t%s\n", p)
	}
	fmt.Fprintf(w, "Birth year\t%d\n", profile.BirthYear)
	return w.Flush()
}

func runProfileDelete(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.disabler.Disable(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "All data deleted")
	return nil
}
