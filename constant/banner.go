package constant

// Banner is printed above the root command's long help.
const Banner = `
 ▶▶  t i n y p l a y
`
