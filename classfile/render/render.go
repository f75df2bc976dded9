// Package render formats a decoded classfile.Class as styled terminal text
// using the shared lipgloss palette (utils.TitleStyle / utils.InfoStyle /
// utils.MutedStyle).
package render

import (
	"fmt"
	"strings"

	"github.com/mabhi256/jclassfile/classfile"
	"github.com/mabhi256/jclassfile/utils"
)

// Summary renders a one-screen overview of a class: version, this/super,
// flag names, and counts of interfaces/fields/methods/attributes.
func Summary(c *classfile.Class) string {
	var b strings.Builder

	thisName, err := c.Pool.GetClassName(c.ThisClass)
	if err != nil {
		thisName = fmt.Sprintf("<unresolvable:%d>", c.ThisClass)
	}

	b.WriteString(utils.TitleStyle.Render(thisName))
	b.WriteString("\n")

	version := fmt.Sprintf("class file version %d.%d", c.MajorVersion, c.MinorVersion)
	b.WriteString(utils.MutedStyle.Render(version))
	b.WriteString("\n\n")

	flags := classfile.ClassFlagNames(c.AccessFlags)
	b.WriteString(utils.InfoStyle.Render("flags: ") + strings.Join(flags, ", "))
	b.WriteString("\n")

	if c.SuperClass != 0 {
		superName, err := c.Pool.GetClassName(c.SuperClass)
		if err != nil {
			superName = fmt.Sprintf("<unresolvable:%d>", c.SuperClass)
		}
		b.WriteString(utils.InfoStyle.Render("extends: ") + superName + "\n")
	}

	for _, ifaceIdx := range c.Interfaces {
		name, err := c.Pool.GetClassName(ifaceIdx)
		if err != nil {
			name = fmt.Sprintf("<unresolvable:%d>", ifaceIdx)
		}
		b.WriteString(utils.InfoStyle.Render("implements: ") + name + "\n")
	}

	b.WriteString("\n")
	b.WriteString(utils.TextStyle.Render(fmt.Sprintf(
		"%d field(s), %d method(s), %d attribute(s), %d constant pool entries",
		len(c.Fields), len(c.Methods), len(c.Attributes), c.Pool.Len(),
	)))
	b.WriteString("\n")

	return b.String()
}

// Fields renders one line per field: flags, descriptor, name.
func Fields(c *classfile.Class) string {
	var b strings.Builder
	for _, f := range c.Fields {
		name, _ := c.Pool.GetUtf8String(f.NameIndex)
		desc, _ := c.Pool.GetUtf8String(f.DescriptorIndex)
		flags := strings.Join(classfile.FieldFlagNames(f.AccessFlags), " ")
		b.WriteString(fmt.Sprintf("%s %s %s\n", utils.MutedStyle.Render(flags), desc, name))
	}
	return b.String()
}

// Methods renders one line per method: flags, name, descriptor.
func Methods(c *classfile.Class) string {
	var b strings.Builder
	for _, m := range c.Methods {
		name, _ := c.Pool.GetUtf8String(m.NameIndex)
		desc, _ := c.Pool.GetUtf8String(m.DescriptorIndex)
		flags := strings.Join(classfile.MethodFlagNames(m.AccessFlags), " ")
		b.WriteString(fmt.Sprintf("%s %s%s\n", utils.MutedStyle.Render(flags), name, desc))
	}
	return b.String()
}

// AttributeNames renders the names of a decoded attribute list, one per
// line, falling back to the raw byte count for attributes whose Data is a
// CustomAttribute (an unrecognized name, or ParsingOption.ParseAttribute off).
func AttributeNames(attrs []classfile.Attribute) string {
	var b strings.Builder
	for _, a := range attrs {
		if _, ok := a.Data.(classfile.CustomAttribute); ok {
			b.WriteString(fmt.Sprintf("%s (%d bytes, raw)\n", a.Name, len(a.Raw)))
			continue
		}
		b.WriteString(a.Name + "\n")
	}
	return b.String()
}
