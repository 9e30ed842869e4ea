// Command relayform serves the contact page and relays submissions to
// EmailJS.
//
// Configuration comes from the environment, optionally seeded by a .env
// file. EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID, EMAILJS_PUBLIC_KEY and
// EMAILJS_TO_EMAIL select the relay; REDIS_URL switches the in-flight
// guard from process memory to Redis.
package main
