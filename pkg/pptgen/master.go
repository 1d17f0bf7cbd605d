package pptgen

import (
	"archive/zip"
	"fmt"

	"github.com/yockii/deck_tools/pkg/theme"
)

// 母版、版式和主题是打开文件所需的最小骨架，
// 配色字体从主题令牌注入theme1.xml。

func (g *Generator) addMasterAndLayout(zipWriter *zip.Writer, cfg *theme.Config) error {
	master := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
    <p:cSld>
        <p:spTree>
            <p:nvGrpSpPr>
                <p:cNvPr id="1" name=""/>
                <p:cNvGrpSpPr/>
                <p:nvPr/>
            </p:nvGrpSpPr>
            <p:grpSpPr/>
        </p:spTree>
    </p:cSld>
    <p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
    <p:sldLayoutIdLst>
        <p:sldLayoutId id="2147483649" r:id="rId1"/>
    </p:sldLayoutIdLst>
</p:sldMaster>`
	if err := writeZipEntry(zipWriter, "ppt/slideMasters/slideMaster1.xml", master); err != nil {
		return err
	}

	masterRels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
    <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
    <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>
</Relationships>`
	if err := writeZipEntry(zipWriter, "ppt/slideMasters/_rels/slideMaster1.xml.rels", masterRels); err != nil {
		return err
	}

	slideLayout := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank">
    <p:cSld name="Blank">
        <p:spTree>
            <p:nvGrpSpPr>
                <p:cNvPr id="1" name=""/>
                <p:cNvGrpSpPr/>
                <p:nvPr/>
            </p:nvGrpSpPr>
            <p:grpSpPr/>
        </p:spTree>
    </p:cSld>
    <p:clrMapOvr>
        <a:masterClrMapping/>
    </p:clrMapOvr>
</p:sldLayout>`
	if err := writeZipEntry(zipWriter, "ppt/slideLayouts/slideLayout1.xml", slideLayout); err != nil {
		return err
	}

	layoutRels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
    <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>
</Relationships>`
	if err := writeZipEntry(zipWriter, "ppt/slideLayouts/_rels/slideLayout1.xml.rels", layoutRels); err != nil {
		return err
	}

	return writeZipEntry(zipWriter, "ppt/theme/theme1.xml", g.themeXML(cfg))
}

func (g *Generator) themeXML(cfg *theme.Config) string {
	c := cfg.Colors
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="%s">
    <a:themeElements>
        <a:clrScheme name="%s">
            <a:dk1><a:srgbClr val="%s"/></a:dk1>
            <a:lt1><a:srgbClr val="%s"/></a:lt1>
            <a:dk2><a:srgbClr val="%s"/></a:dk2>
            <a:lt2><a:srgbClr val="%s"/></a:lt2>
            <a:accent1><a:srgbClr val="%s"/></a:accent1>
            <a:accent2><a:srgbClr val="%s"/></a:accent2>
            <a:accent3><a:srgbClr val="%s"/></a:accent3>
            <a:accent4><a:srgbClr val="%s"/></a:accent4>
            <a:accent5><a:srgbClr val="%s"/></a:accent5>
            <a:accent6><a:srgbClr val="%s"/></a:accent6>
            <a:hlink><a:srgbClr val="%s"/></a:hlink>
            <a:folHlink><a:srgbClr val="%s"/></a:folHlink>
        </a:clrScheme>
        <a:fontScheme name="%s">
            <a:majorFont>
                <a:latin typeface="%s"/>
                <a:ea typeface=""/>
                <a:cs typeface=""/>
            </a:majorFont>
            <a:minorFont>
                <a:latin typeface="%s"/>
                <a:ea typeface=""/>
                <a:cs typeface=""/>
            </a:minorFont>
        </a:fontScheme>
        <a:fmtScheme name="Office">
            <a:fillStyleLst>
                <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
                <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
                <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
            </a:fillStyleLst>
            <a:lnStyleLst>
                <a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
                <a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
                <a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
            </a:lnStyleLst>
            <a:effectStyleLst>
                <a:effectStyle><a:effectLst/></a:effectStyle>
                <a:effectStyle><a:effectLst/></a:effectStyle>
                <a:effectStyle><a:effectLst/></a:effectStyle>
            </a:effectStyleLst>
            <a:bgFillStyleLst>
                <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
                <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
                <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
            </a:bgFillStyleLst>
        </a:fmtScheme>
    </a:themeElements>
</a:theme>`,
		escapeXML(cfg.Name), escapeXML(cfg.Name),
		hexToken(c.TextDark), hexToken(c.Background),
		hexToken(c.Text), hexToken(c.Surface),
		hexToken(c.Primary), hexToken(c.Secondary), hexToken(c.Accent),
		hexToken(c.Success), hexToken(c.Warning), hexToken(c.Error),
		hexToken(c.Primary), hexToken(c.Secondary),
		escapeXML(cfg.Name),
		escapeXML(fontToken(cfg.Fonts.Heading.Family)),
		escapeXML(fontToken(cfg.Fonts.Body.Family)))
}
