package pptgen

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/logger"
	"github.com/yockii/deck_tools/pkg/theme"
	"github.com/yockii/deck_tools/pkg/util"
)

// 幻灯片页面尺寸，16:9，EMU单位
const (
	slideWidthEMU  = 12192000
	slideHeightEMU = 6858000
)

// Generator 把幻灯片序列直接打包为OOXML演示文稿，
// 不依赖外部转换服务的本地PPTX导出路径。
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate 生成PPTX字节流。主题色与字体取自主题令牌，
// 每页幻灯片一个slideN.xml。
func (g *Generator) Generate(slides []deck.Slide, cfg *theme.Config, title string) ([]byte, error) {
	buf := new(bytes.Buffer)
	zipWriter := zip.NewWriter(buf)

	if err := g.addPresentationFiles(zipWriter, slides, cfg, title); err != nil {
		return nil, err
	}

	if err := zipWriter.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteToFile 将PPTX写入文件
func (g *Generator) WriteToFile(pptxBytes []byte, filePath string) error {
	if err := util.SaveFile(filePath, pptxBytes); err != nil {
		logger.Error("写入PPTX文件失败", logger.F("filePath", filePath), logger.F("error", err))
		return err
	}
	return nil
}

func (g *Generator) addPresentationFiles(zipWriter *zip.Writer, slides []deck.Slide, cfg *theme.Config, title string) error {
	if err := g.addContentTypes(zipWriter, len(slides)); err != nil {
		return err
	}
	if err := g.addRels(zipWriter); err != nil {
		return err
	}
	if err := g.addDocProps(zipWriter, title, len(slides)); err != nil {
		return err
	}
	if err := g.addPresentation(zipWriter, len(slides)); err != nil {
		return err
	}
	if err := g.addMasterAndLayout(zipWriter, cfg); err != nil {
		return err
	}
	return g.addSlides(zipWriter, slides, cfg)
}

func (g *Generator) addContentTypes(zipWriter *zip.Writer, slideCount int) error {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
    <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
    <Default Extension="xml" ContentType="application/xml"/>
    <Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
    <Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>
    <Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>
    <Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>
    <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
    <Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&sb, `
    <Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	sb.WriteString(`
</Types>`)
	return writeZipEntry(zipWriter, "[Content_Types].xml", sb.String())
}

func (g *Generator) addRels(zipWriter *zip.Writer) error {
	return writeZipEntry(zipWriter, "_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
    <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>
    <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
    <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
</Relationships>`)
}

func (g *Generator) addDocProps(zipWriter *zip.Writer, title string, slideCount int) error {
	core := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title>%s</dc:title>
</cp:coreProperties>`, escapeXML(title))
	if err := writeZipEntry(zipWriter, "docProps/core.xml", core); err != nil {
		return err
	}

	app := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">
    <Slides>%d</Slides>
    <Application>deck_tools</Application>
</Properties>`, slideCount)
	return writeZipEntry(zipWriter, "docProps/app.xml", app)
}

func (g *Generator) addPresentation(zipWriter *zip.Writer, slideCount int) error {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
    <p:sldMasterIdLst>
        <p:sldMasterId id="2147483648" r:id="rId1"/>
    </p:sldMasterIdLst>
    <p:sldIdLst>`)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&sb, `
        <p:sldId id="%d" r:id="rId%d"/>`, 256+i, 2+i)
	}
	fmt.Fprintf(&sb, `
    </p:sldIdLst>
    <p:sldSz cx="%d" cy="%d"/>
    <p:notesSz cx="%d" cy="%d"/>
</p:presentation>`, slideWidthEMU, slideHeightEMU, slideHeightEMU, slideWidthEMU)
	if err := writeZipEntry(zipWriter, "ppt/presentation.xml", sb.String()); err != nil {
		return err
	}

	var rels strings.Builder
	rels.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
    <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&rels, `
    <Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, 2+i, i+1)
	}
	rels.WriteString(`
</Relationships>`)
	return writeZipEntry(zipWriter, "ppt/_rels/presentation.xml.rels", rels.String())
}

func (g *Generator) addSlides(zipWriter *zip.Writer, slides []deck.Slide, cfg *theme.Config) error {
	for i, slide := range slides {
		slideNum := i + 1
		slidePath := fmt.Sprintf("ppt/slides/slide%d.xml", slideNum)
		if err := writeZipEntry(zipWriter, slidePath, g.generateSlideXML(slide, cfg)); err != nil {
			logger.Error("写入幻灯片内容失败", logger.F("slidePath", slidePath), logger.F("error", err))
			return err
		}

		slideRelPath := fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum)
		if err := writeZipEntry(zipWriter, slideRelPath, slideRelXML); err != nil {
			logger.Error("写入幻灯片关系失败", logger.F("slideRelPath", slideRelPath), logger.F("error", err))
			return err
		}
	}
	return nil
}

const slideRelXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
    <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
</Relationships>`

func writeZipEntry(zipWriter *zip.Writer, name, content string) error {
	w, err := zipWriter.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte(content))
	return err
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// hexToken 主题色转OOXML的RRGGBB写法，坏值退回黑色
func hexToken(token string) string {
	token = strings.TrimPrefix(strings.TrimSpace(token), "#")
	if len(token) != 6 {
		return "000000"
	}
	return strings.ToUpper(token)
}

// fontToken 取字体栈里的第一个字体名
func fontToken(family string) string {
	first := strings.Split(family, ",")[0]
	return strings.Trim(strings.TrimSpace(first), "'\"")
}
