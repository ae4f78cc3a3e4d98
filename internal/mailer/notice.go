package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"math/rand"
	"strings"
	"time"

	"society-billing-svc/internal/models"
)

const noticeTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 5px;">
  <div style="text-align: center; margin-bottom: 20px;">
    <h2 style="color: #333;">{{.SocietyName}}</h2>
    <p style="color: #666;">Monthly Maintenance Bill</p>
  </div>

  <div style="margin-bottom: 20px;">
    <h3 style="color: #333; margin-bottom: 10px;">Bill To:</h3>
    <p style="margin: 5px 0;">{{.ResidentName}}</p>
    <p style="margin: 5px 0;">Flat No: {{.FlatNumber}}</p>
  </div>

  <div style="margin-bottom: 20px;">
    <h3 style="color: #333; margin-bottom: 10px;">Bill Details:</h3>
    <p style="margin: 5px 0;">Bill Date: {{.BillDate}}</p>
    <p style="margin: 5px 0;">Bill Period: {{.Period}}</p>
    <p style="margin: 5px 0;">Bill No: {{.Reference}}</p>
  </div>

  <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
    <thead>
      <tr style="background-color: #f5f5f5;">
        <th style="text-align: left; padding: 10px; border: 1px solid #e0e0e0;">Description</th>
        <th style="text-align: right; padding: 10px; border: 1px solid #e0e0e0;">Amount (&#8377;)</th>
      </tr>
    </thead>
    <tbody>
      <tr>
        <td style="padding: 10px; border: 1px solid #e0e0e0;">Monthly Maintenance Fee ({{.Period}})</td>
        <td style="text-align: right; padding: 10px; border: 1px solid #e0e0e0;">{{.Amount}}</td>
      </tr>
      <tr style="font-weight: bold;">
        <td style="padding: 10px; border: 1px solid #e0e0e0;">Total</td>
        <td style="text-align: right; padding: 10px; border: 1px solid #e0e0e0;">&#8377;{{.Amount}}</td>
      </tr>
    </tbody>
  </table>

  <div style="margin-top: 30px; text-align: right;">
    <p style="font-weight: bold; margin-bottom: 5px;">Treasurer</p>
    <p>{{.Treasurer}}</p>
  </div>

  <div style="margin-top: 30px; font-size: 12px; color: #666; text-align: center; border-top: 1px solid #e0e0e0; padding-top: 15px;">
    <p style="margin-bottom: 10px;">If you have any queries, mail at {{.ContactEmail}}</p>
  </div>
</div>
`

var noticeTmpl = template.Must(template.New("notice").Parse(noticeTemplate))

type noticeData struct {
	SocietyName  string
	ResidentName string
	FlatNumber   string
	BillDate     string
	Period       string
	Reference    string
	Amount       string
	Treasurer    string
	ContactEmail string
}

// newBillReference produces a pseudo-random bill number like "ABM-48211".
func newBillReference() string {
	return fmt.Sprintf("ABM-%d", 10000+rand.Intn(90000))
}

// billPeriod formats the billing period as "June 2025" from the stored
// lowercase month name.
func billPeriod(bill *models.Bill) string {
	month := bill.Month
	if month != "" {
		month = strings.ToUpper(month[:1]) + month[1:]
	}
	return month + " " + bill.Year
}

// renderNotice produces the subject and HTML body of a bill notice.
func renderNotice(societyName, treasurer, contactEmail string, resident *models.Resident, bill *models.Bill) (subject, body string, err error) {
	period := billPeriod(bill)
	subject = fmt.Sprintf("%s - Maintenance Bill for %s", societyName, period)

	data := noticeData{
		SocietyName:  societyName,
		ResidentName: resident.Name,
		FlatNumber:   resident.FlatNumber,
		BillDate:     time.Now().Format("2 January 2006"),
		Period:       period,
		Reference:    newBillReference(),
		Amount:       bill.Amount,
		Treasurer:    treasurer,
		ContactEmail: contactEmail,
	}

	var buf bytes.Buffer
	if err := noticeTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
