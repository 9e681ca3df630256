package sellerclient

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// uploadedFiles holds the resolved locations for the attachments that
// were present in the submission; absent attachments leave their slot
// empty and produce no payload field.
type uploadedFiles struct {
	ProfilePhoto  string
	Certificate   string
	IdentityProof string
	ProductPhotos []string
	CraftVideo    string
}

// uploadAttachments runs one upload per present attachment, all
// concurrently, and joins fail-fast: the first error cancels the group
// context and fails the whole submission. Files already stored are not
// cleaned up. Product photo locations keep the input order.
func (c *Client) uploadAttachments(ctx context.Context, sub *SellerSubmission) (*uploadedFiles, error) {
	g, ctx := errgroup.WithContext(ctx)
	out := &uploadedFiles{}

	if sub.ProfilePhoto != nil {
		file := *sub.ProfilePhoto
		g.Go(func() error {
			url, err := c.UploadFile(ctx, file, FileImage)
			if err != nil {
				return err
			}
			out.ProfilePhoto = url
			return nil
		})
	}

	if sub.Certificate != nil {
		file := *sub.Certificate
		g.Go(func() error {
			url, err := c.UploadFile(ctx, file, FileDocument)
			if err != nil {
				return err
			}
			out.Certificate = url
			return nil
		})
	}

	if sub.IdentityProof != nil {
		file := *sub.IdentityProof
		g.Go(func() error {
			url, err := c.UploadFile(ctx, file, FileDocument)
			if err != nil {
				return err
			}
			out.IdentityProof = url
			return nil
		})
	}

	if len(sub.ProductPhotos) > 0 {
		out.ProductPhotos = make([]string, len(sub.ProductPhotos))
		for i, file := range sub.ProductPhotos {
			g.Go(func() error {
				url, err := c.UploadFile(ctx, file, FileImage)
				if err != nil {
					return err
				}
				out.ProductPhotos[i] = url
				return nil
			})
		}
	}

	if sub.CraftVideo != nil {
		file := *sub.CraftVideo
		g.Go(func() error {
			url, err := c.UploadFile(ctx, file, FileVideo)
			if err != nil {
				return err
			}
			out.CraftVideo = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
