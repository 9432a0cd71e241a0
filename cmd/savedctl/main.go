// savedctl is a command-line client for a profile's saved-property
// collection. It drives the optimistic coordinator against the backend
// configured under savedApi.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"homiio/config"
	logs "homiio/internal/infra/log"
	"homiio/internal/infra/remote"
	"homiio/internal/usecase"
	"homiio/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Supported subcommands:
// - list:   Show saved properties and folders
// - save:   Bookmark a property, optionally into a folder
// - unsave: Remove a bookmark
// - move:   Move bookmarks into a folder

func main() {
	saveCmd := flag.NewFlagSet("save", flag.ExitOnError)
	unsaveCmd := flag.NewFlagSet("unsave", flag.ExitOnError)
	moveCmd := flag.NewFlagSet("move", flag.ExitOnError)

	saveProperty := saveCmd.String("property", "", "Property ID to save")
	saveFolder := saveCmd.String("folder", "", "Folder ID to file the bookmark into (optional)")
	saveNotes := saveCmd.String("notes", "", "Notes to attach (optional)")

	unsaveProperty := unsaveCmd.String("property", "", "Property ID to unsave")

	moveFolder := moveCmd.String("folder", "", "Target folder ID (empty moves to uncategorized)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	coordinator, err := newCoordinator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runSubcommand(ctx, coordinator, &subcommandFlags{
		save:           saveCmd,
		saveProperty:   saveProperty,
		saveFolder:     saveFolder,
		saveNotes:      saveNotes,
		unsave:         unsaveCmd,
		unsaveProperty: unsaveProperty,
		move:           moveCmd,
		moveFolder:     moveFolder,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type subcommandFlags struct {
	save           *flag.FlagSet
	saveProperty   *string
	saveFolder     *string
	saveNotes      *string
	unsave         *flag.FlagSet
	unsaveProperty *string
	move           *flag.FlagSet
	moveFolder     *string
}

func newCoordinator() (usecase.SavedPropertyCoordinator, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	tokens := remote.NewStaticTokenProvider(cfg)
	api := remote.NewSavedPropertyAPI(cfg.SavedAPI, tokens, logger)

	return impl.NewSavedPropertyCoordinator(impl.CoordinatorParams{
		API:    api,
		Logger: logger,
	}), nil
}

func runSubcommand(ctx context.Context, coordinator usecase.SavedPropertyCoordinator, flags *subcommandFlags) error {
	switch os.Args[1] {
	case "list":
		return runList(ctx, coordinator)
	case "save":
		return runSave(ctx, coordinator, flags)
	case "unsave":
		return runUnsave(ctx, coordinator, flags)
	case "move":
		return runMove(ctx, coordinator, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func runList(ctx context.Context, coordinator usecase.SavedPropertyCoordinator) error {
	if err := coordinator.Refresh(ctx); err != nil {
		return errors.Wrap(err, "failed to refresh")
	}

	fmt.Println("Folders:")
	for _, folder := range coordinator.Folders() {
		marker := " "
		if folder.IsDefault {
			marker = "*"
		}
		fmt.Printf("  %s %s  %s (%d)\n", marker, folder.ID, folder.Name, folder.PropertyCount)
	}

	fmt.Println("Saved properties:")
	for _, saved := range coordinator.SavedProperties() {
		folder := "uncategorized"
		if saved.FolderID != nil {
			folder = saved.FolderID.String()
		}
		fmt.Printf("  %s  folder=%s  added=%s\n", saved.PropertyID, folder, saved.AddedAt.Format("2006-01-02"))
	}

	return nil
}

func runSave(ctx context.Context, coordinator usecase.SavedPropertyCoordinator, flags *subcommandFlags) error {
	if err := flags.save.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse save flags")
	}

	propertyID, err := uuid.Parse(*flags.saveProperty)
	if err != nil {
		return errors.New("--property flag must be a valid property ID")
	}

	var folderID *uuid.UUID
	if *flags.saveFolder != "" {
		parsed, err := uuid.Parse(*flags.saveFolder)
		if err != nil {
			return errors.New("--folder flag must be a valid folder ID")
		}
		folderID = &parsed
	}

	// Hydrate folder state so counts update against known folders.
	if err := coordinator.Refresh(ctx); err != nil {
		return errors.Wrap(err, "failed to refresh")
	}

	if err := coordinator.SaveProperty(ctx, propertyID, folderID, *flags.saveNotes); err != nil {
		return errors.Wrap(err, "failed to save property")
	}

	fmt.Printf("Saved %s\n", propertyID)

	return nil
}

func runUnsave(ctx context.Context, coordinator usecase.SavedPropertyCoordinator, flags *subcommandFlags) error {
	if err := flags.unsave.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse unsave flags")
	}

	propertyID, err := uuid.Parse(*flags.unsaveProperty)
	if err != nil {
		return errors.New("--property flag must be a valid property ID")
	}

	if err := coordinator.Refresh(ctx); err != nil {
		return errors.Wrap(err, "failed to refresh")
	}

	if err := coordinator.UnsaveProperty(ctx, propertyID); err != nil {
		return errors.Wrap(err, "failed to unsave property")
	}

	fmt.Printf("Unsaved %s\n", propertyID)

	return nil
}

func runMove(ctx context.Context, coordinator usecase.SavedPropertyCoordinator, flags *subcommandFlags) error {
	if err := flags.move.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse move flags")
	}

	propertyIDs := make([]uuid.UUID, 0, flags.move.NArg())
	for _, arg := range flags.move.Args() {
		propertyID, err := uuid.Parse(arg)
		if err != nil {
			return errors.Errorf("invalid property ID %q", arg)
		}
		propertyIDs = append(propertyIDs, propertyID)
	}
	if len(propertyIDs) == 0 {
		return errors.New("at least one property ID argument is required")
	}

	var folderID *uuid.UUID
	if *flags.moveFolder != "" {
		parsed, err := uuid.Parse(*flags.moveFolder)
		if err != nil {
			return errors.New("--folder flag must be a valid folder ID")
		}
		folderID = &parsed
	}

	if err := coordinator.Refresh(ctx); err != nil {
		return errors.Wrap(err, "failed to refresh")
	}

	result, err := coordinator.MoveToFolder(ctx, propertyIDs, folderID)
	if err != nil {
		return errors.Wrap(err, "failed to move properties")
	}

	fmt.Printf("Moved %d of %d\n", len(result.Moved), len(propertyIDs))
	for _, failure := range result.Failed {
		fmt.Printf("  failed %s: %v\n", failure.PropertyID, failure.Err)
	}

	return nil
}

func printUsage() {
	fmt.Println("Usage: savedctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list      Show saved properties and folders")
	fmt.Println("  save      Bookmark a property (--property, --folder, --notes)")
	fmt.Println("  unsave    Remove a bookmark (--property)")
	fmt.Println("  move      Move bookmarks into a folder (--folder) <propertyID>...")
	fmt.Println("")
	fmt.Println("Use 'savedctl <command> -h' for more information about a command.")
}
