package pdfsource

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pfraquete/BookFlow/model"
)

// Info is the document information dictionary of a PDF file
type Info struct {
	Title        string
	Author       string
	Subject      string
	Keywords     string
	Creator      string
	Producer     string
	CreationDate string
	ModDate      string
	PageCount    int
}

// ReadInfo reads the information dictionary and page count of a PDF file
func ReadInfo(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	conf := pdfmodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	return &Info{
		Title:        ctx.Title,
		Author:       ctx.Author,
		Subject:      ctx.Subject,
		Keywords:     ctx.Keywords,
		Creator:      ctx.Creator,
		Producer:     ctx.Producer,
		CreationDate: ctx.CreationDate,
		ModDate:      ctx.ModDate,
		PageCount:    ctx.PageCount,
	}, nil
}

// Metadata converts the info dictionary to document metadata. Title and
// author are always present, possibly empty.
func (i *Info) Metadata() model.Metadata {
	meta := model.Metadata{
		model.MetaTitle:  i.Title,
		model.MetaAuthor: i.Author,
	}
	optional := map[string]string{
		model.MetaSubject:      i.Subject,
		model.MetaKeywords:     i.Keywords,
		model.MetaCreator:      i.Creator,
		model.MetaProducer:     i.Producer,
		model.MetaCreationDate: i.CreationDate,
		model.MetaModDate:      i.ModDate,
	}
	for k, v := range optional {
		if v != "" {
			meta[k] = v
		}
	}
	return meta
}

// trailerInfo reads the information dictionary through the text reader, for
// files pdfcpu refuses to validate
func trailerInfo(r *pdf.Reader) *Info {
	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return &Info{PageCount: r.NumPage()}
	}
	return &Info{
		Title:        info.Key("Title").Text(),
		Author:       info.Key("Author").Text(),
		Subject:      info.Key("Subject").Text(),
		Keywords:     info.Key("Keywords").Text(),
		Creator:      info.Key("Creator").Text(),
		Producer:     info.Key("Producer").Text(),
		CreationDate: info.Key("CreationDate").RawString(),
		ModDate:      info.Key("ModDate").RawString(),
		PageCount:    r.NumPage(),
	}
}
