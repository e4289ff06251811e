package statuspage

const htmlTemplateSource = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Code }} {{ .Text }}</title>
<style>
body { font-family: sans-serif; margin: 4em auto; max-width: 40em; color: #333; }
h1 { font-weight: normal; }
</style>
</head>
<body>
<h1>{{ .Code }} {{ .Text }}</h1>
<p>{{ .Message }}</p>
</body>
</html>
`

const textTemplateSource = `{{ .Code }} {{ .Text }}

{{ .Message }}
`
