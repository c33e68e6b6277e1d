package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/roomdesk/roomdesk/internal/cli/client"
	"github.com/spf13/cobra"
)

func newAdminImagesCmd(opts []Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Manage hotel and room galleries",
		Long: `Manage hotel and room galleries.

The first argument selects the gallery owner: "hotels" or "rooms".

Examples:
  $ roomdesk admin images ls hotels 3
  $ roomdesk admin images upload rooms 12 ./suite.jpg --alt "Suite with view"
  $ roomdesk admin images delete rooms 12 40`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "ls <hotels|rooms> <owner-id>",
		Aliases: []string{"list"},
		Short:   "List gallery images",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, id, err := parseOwner(args[0], args[1])
			if err != nil {
				return err
			}
			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			images, err := e.api.ListImages(e.ctx(cmd), owner, id)
			if err != nil {
				return err
			}
			return e.printer.Print(images, imagesTable(images))
		},
	})

	var alt string
	uploadCmd := &cobra.Command{
		Use:   "upload <hotels|rooms> <owner-id> <file>",
		Short: "Upload an image (max 5MB, 10 per gallery)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, id, err := parseOwner(args[0], args[1])
			if err != nil {
				return err
			}
			data, err := readImageFile(args[2])
			if err != nil {
				return err
			}
			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			if err := e.api.CheckGalleryRoom(e.ctx(cmd), owner, id); err != nil {
				return err
			}

			img, err := e.api.UploadImage(e.ctx(cmd), owner, id, client.ImageUpload{
				Filename: filepath.Base(args[2]),
				AltText:  alt,
				Data:     data,
			})
			if err != nil {
				return err
			}
			e.printer.Message("✓ Uploaded image #%d", img.ID)
			return e.printer.Print(img, imagesTable([]client.Image{*img}))
		},
	}
	uploadCmd.Flags().StringVar(&alt, "alt", "", "Alt text (defaults to the file name)")
	cmd.AddCommand(uploadCmd)

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <hotels|rooms> <owner-id> <image-id>",
		Short: "Delete a gallery image",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, id, err := parseOwner(args[0], args[1])
			if err != nil {
				return err
			}
			imageID, err := parseID(args[2], "image")
			if err != nil {
				return err
			}
			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			if !yes {
				if err := confirm(fmt.Sprintf("Delete image #%d", imageID)); err != nil {
					return err
				}
			}
			if err := e.api.DeleteImage(e.ctx(cmd), owner, id, imageID); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "✓ Deleted image #%d\n", imageID)
			return nil
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.AddCommand(deleteCmd)

	return cmd
}

func parseOwner(kind, rawID string) (client.ImageOwner, int, error) {
	var owner client.ImageOwner
	switch kind {
	case "hotel", "hotels":
		owner = client.HotelImages
	case "room", "rooms":
		owner = client.RoomImages
	default:
		return "", 0, fmt.Errorf("unknown gallery owner '%s' (use hotels or rooms)", kind)
	}
	id, err := parseID(rawID, string(owner[:len(owner)-1]))
	if err != nil {
		return "", 0, err
	}
	return owner, id, nil
}

// readImageFile loads an upload. The size is checked before the file is read.
func readImageFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > client.MaxImageSize {
		return nil, fmt.Errorf("%s exceeds the %dMB upload limit", path, client.MaxImageSize/(1024*1024))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
