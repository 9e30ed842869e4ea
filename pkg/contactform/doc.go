// Package contactform drives contact forms that deliver through an email
// relay.
//
// A Form models one rendered form: its field values, the submit control,
// an optional consent checkbox and the message region that reports the
// result. A Controller binds behavior to forms:
//
//	ctrl := contactform.New(cfg, emailjs.NewClient(clientCfg),
//	    contactform.WithLogger(log),
//	    contactform.WithSenderLabel("Support Team"),
//	)
//
//	form := contactform.NewForm(id,
//	    contactform.WithSubmitButton("Contact us"),
//	    contactform.WithConsentCheckbox(),
//	    contactform.WithValues(r.PostForm),
//	)
//	ctrl.Bind(form)
//
//	_ = form.ToggleConsent(true) // submit control enabled
//	_ = form.Submit(ctx)         // one relay call, outcome shown in the form
//
// Binding is idempotent. A bound form with a consent checkbox keeps its
// submit control disabled until the box is checked.
//
// Submission runs Idle -> Sending -> Succeeded|Failed -> Idle. While
// sending the control is disabled and relabelled. When the relay answers
// 200 the form is reset. Every outcome is written to the message region
// and the control is re-enabled with its label restored, whatever the
// result. Failures never escape Submit; they are classified by FailureKind
// and logged.
package contactform
