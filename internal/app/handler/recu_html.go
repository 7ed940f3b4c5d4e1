package handler

import (
	"bytes"
	"html/template"

	"deltapi/internal/app/paiement"
)

// Gabarit imprimable du reçu, rendu tel que le front l'envoie à l'impression
var recuTemplate = template.Must(template.New("recu").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>{{.Titre}} {{.Recu.NumeroRecu}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; color: #222; }
h1 { text-align: center; font-size: 22px; }
.entete { text-align: center; margin-bottom: 24px; }
.section { margin-bottom: 18px; }
.section h2 { font-size: 15px; border-bottom: 1px solid #ccc; padding-bottom: 4px; }
table { width: 100%; border-collapse: collapse; }
td { padding: 4px 0; }
td.label { color: #555; width: 45%; }
.pied { text-align: center; margin-top: 32px; font-size: 12px; color: #777; }
</style>
</head>
<body>
<div class="entete">
<h1>{{.Titre}}</h1>
<div>Reçu N° {{.Recu.NumeroRecu}} — {{.Recu.DateAffichee}}</div>
</div>
<div class="section">
<h2>{{.EtudiantH}}</h2>
<table>
<tr><td class="label">Nom</td><td>{{.Recu.NomEtudiant}}</td></tr>
{{if .Recu.Telephone}}<tr><td class="label">Téléphone</td><td>{{.Recu.Telephone}}</td></tr>{{end}}
{{if .Recu.Adresse}}<tr><td class="label">Adresse</td><td>{{.Recu.Adresse}}</td></tr>{{end}}
</table>
</div>
<div class="section">
<h2>{{.PaiementH}}</h2>
<table>
<tr><td class="label">Groupe</td><td>{{.Recu.NomGroupe}}</td></tr>
{{if .Recu.Mois}}<tr><td class="label">Mois</td><td>{{.Recu.Mois}}</td></tr>{{end}}
<tr><td class="label">Statut</td><td>{{.Recu.Statut}}</td></tr>
<tr><td class="label">Montant payé</td><td>{{printf "%.2f" .Recu.Montant}} MAD</td></tr>
{{if .Recu.AfficherTotal}}
<tr><td class="label">Montant total</td><td>{{printf "%.2f" .Recu.MontantTotal}} MAD</td></tr>
<tr><td class="label">Restant</td><td>{{printf "%.2f" .Recu.Restant}} MAD</td></tr>
{{end}}
{{if .Recu.AfficherFrais}}<tr><td class="label">Frais d'inscription</td><td>{{printf "%.2f" .Recu.FraisInscription}} MAD</td></tr>{{end}}
{{if .Recu.Professeurs}}
<tr><td class="label">Professeurs</td><td>{{range $i, $p := .Recu.Professeurs}}{{if $i}}, {{end}}{{$p.NomComplet}}{{if $p.Specialite}} ({{$p.Specialite}}){{end}}{{end}}</td></tr>
{{end}}
{{if .Recu.Matieres}}
<tr><td class="label">Matières</td><td>{{range $i, $m := .Recu.Matieres}}{{if $i}}, {{end}}{{$m}}{{end}}</td></tr>
{{end}}
</table>
</div>
<div class="pied">
<p>{{.Merci}}</p>
<p>{{.Genere}}</p>
</div>
</body>
</html>
`))

func renderRecuHTML(recu paiement.RecuView) ([]byte, error) {
	var buf bytes.Buffer
	err := recuTemplate.Execute(&buf, struct {
		Titre     string
		EtudiantH string
		PaiementH string
		Merci     string
		Genere    string
		Recu      paiement.RecuView
	}{
		Titre:     paiement.RecuTitre,
		EtudiantH: paiement.RecuEtudiantH,
		PaiementH: paiement.RecuPaiementH,
		Merci:     paiement.RecuMerci,
		Genere:    paiement.RecuGenere,
		Recu:      recu,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
